// Package shared holds helpers used by more than one package.
//
// The testutil subpackage provides the captured-log handler and the
// throwaway SQLite databases used by package tests:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    db := testutil.NewTestDB(t, testutil.Fixture())
//	    ...
//	}
package shared
