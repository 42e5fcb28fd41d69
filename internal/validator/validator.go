// Package validator checks exercise data against the record schema and
// the business rules before the rest of the system is allowed to use it.
// It fails fast and never repairs data; a store cannot be built from
// records that did not pass.
package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/verbdrill/backend/internal/domain/exercise"
	"github.com/verbdrill/backend/internal/loader"
	"github.com/verbdrill/backend/internal/worker"
)

// ErrInvalid marks any validation failure.
var ErrInvalid = errors.New("exercise data failed validation")

// Validator validates exercise records. Schema constraints (required
// fields, enum membership) are expressed as struct tags on the domain
// type; business rules live on the domain type itself.
type Validator struct {
	schema *playground.Validate
}

func New() *Validator {
	return &Validator{schema: playground.New(playground.WithRequiredStructEnabled())}
}

// ValidateRecord checks a single exercise against the schema and the
// business rules.
func (v *Validator) ValidateRecord(ex exercise.Exercise) error {
	if err := v.schema.Struct(ex); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				problems[i] = fmt.Sprintf("field %s failed rule %q", fe.Field(), fe.Tag())
			}
			return &exercise.ValidationError{ExerciseID: ex.ID, Reason: strings.Join(problems, "; ")}
		}
		return err
	}
	return ex.Validate()
}

// ValidateAll checks every record and collects all problems instead of
// stopping at the first one.
func (v *Validator) ValidateAll(records []exercise.Exercise) *Report {
	report := &Report{}
	for _, ex := range records {
		if err := v.ValidateRecord(ex); err != nil {
			report.Problems = append(report.Problems, err.Error())
		}
	}
	return report
}

// Report lists the problems found by a validation pass.
type Report struct {
	Problems []string
}

// OK reports whether the pass found no problems.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err returns nil for a clean report, otherwise an error wrapping
// ErrInvalid that carries every problem found.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(r.Problems, "\n  "))
}

type fileReport struct {
	path     string
	problems []string
}

// ValidateDir runs the startup validation pass over every exercise file
// under dataDir. Files are checked on a small worker pool since each
// file is independent; the report is ordered by path so the output stays
// deterministic. Structural problems the loader can only see globally
// (duplicate ids, metadata mismatches) are appended at the end.
func (v *Validator) ValidateDir(dataDir string) *Report {
	files, err := loader.Files(dataDir)
	if err != nil {
		return &Report{Problems: []string{err.Error()}}
	}

	pool := worker.NewPool[fileReport](3, len(files)+1)
	for _, path := range files {
		p := path
		pool.Submit(p, func() fileReport {
			return v.validateFile(p)
		})
	}
	pool.Close()

	reports := make([]fileReport, 0, len(files))
	for range files {
		res := <-pool.Results()
		reports = append(reports, res.Value)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].path < reports[j].path })

	report := &Report{}
	for _, fr := range reports {
		report.Problems = append(report.Problems, fr.problems...)
	}

	// The per-file pass cannot see duplicates across files.
	if _, err := loader.LoadAll(dataDir); err != nil {
		report.Problems = append(report.Problems, err.Error())
	}
	return report
}

func (v *Validator) validateFile(path string) fileReport {
	fr := fileReport{path: path}
	exercises, err := loader.LoadFile(path)
	if err != nil {
		fr.problems = append(fr.problems, err.Error())
		return fr
	}
	for _, ex := range exercises {
		if err := v.ValidateRecord(ex); err != nil {
			fr.problems = append(fr.problems, fmt.Sprintf("%s: %v", path, err))
		}
	}
	return fr
}
