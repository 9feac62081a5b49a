// Package app wires the report service together and manages its lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration (defaults, YAML file, AWR_* environment)
//	2. Initialize logging and OpenTelemetry
//	3. Open the report store, migrating and seeding when configured
//	4. Build repositories and report services
//	5. Set up the chi router, middleware and handlers
//	6. Configure the HTTP server
//
// # Usage
//
//	application, err := app.NewApplication(ctx)
//	if err != nil {
//	    return err
//	}
//	return application.Run()
//
// Run handles SIGINT and SIGTERM: in-flight requests are drained, telemetry
// is flushed and the database is closed. Errors are returned to the caller;
// the package never calls os.Exit.
package app
