package validation

import "testing"

func TestReportAddError(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Fatal("new report should be valid")
	}

	r.AddError(Result{Level: LevelSchema, Message: "boom"})
	if r.Valid {
		t.Error("report with error should be invalid")
	}
	if len(r.Errors) != 1 || r.Errors[0].Severity != SeverityError {
		t.Errorf("errors = %+v", r.Errors)
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestReportWarningsKeepValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelAnalytical, Message: "hmm"})
	r.AddInfo(Result{Level: LevelAnalytical, Message: "fyi"})

	if !r.Valid {
		t.Error("warnings and info must not invalidate the report")
	}
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Message: "w1"})

	b := NewReport()
	b.AddError(Result{Message: "e1"})
	b.AddInfo(Result{Message: "i1"})

	a.Merge(b)

	if a.Valid {
		t.Error("merged report should inherit invalidity")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 || len(a.Info) != 1 {
		t.Errorf("merged counts wrong: %s", a.Summary)
	}
}
