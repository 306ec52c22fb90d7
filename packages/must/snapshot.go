package must

import (
	"runtime"
)

type namer interface {
	Name() string
}

// MatchSnapshot compares actual, encoded as JSON, with the snapshot stored
// next to the calling test file. The test name keys the snapshot; name
// distinguishes several snapshots taken by one test. Set
// MUST_UPDATE_SNAPSHOTS=1 to create or rewrite snapshots.
func MatchSnapshot(t TestingT, actual any, name ...string) {
	t.Helper()
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		report(t, &Failure{Message: "cannot determine the calling test file"})
		return
	}

	var testName, snapshotName string
	if n, ok := t.(namer); ok {
		testName = n.Name()
	}
	if len(name) > 0 {
		snapshotName = name[0]
	}

	_, manager := current()
	result := manager.Compare(file, testName, snapshotName, actual)
	if result.Passed {
		return
	}
	report(t, &Failure{
		Message:  result.Message,
		Expected: result.Expected,
		Actual:   result.Actual,
		Compared: result.Expected != nil,
		Err:      result.Err,
	})
}
