package results

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// estimatesFile is the name of a sub-benchmark's statistics file, matching
// the layout criterion-style timing engines write:
// <base>/<group>/<sub>/new/estimates.json
const estimatesFile = "estimates.json"

// pointEstimatePath selects the regression slope's point estimate inside an
// estimates file
const pointEstimatePath = "slope.point_estimate"

// LoadGroupEstimates reads the point-estimate durations of one benchmark
// group from an external timing-source tree. For each recognized phase
// sub-benchmark it extracts the numeric value at "slope.point_estimate".
//
// Gaps are non-fatal: a missing group directory, a missing estimates file, or
// a record without the expected numeric field each produce a Warning and a
// zero contribution instead of an error. Sub-directories named anything other
// than "serialize" or "deserialize" are ignored outright.
func LoadGroupEstimates(baseDir, group string) ([]PhaseSample, []Warning) {
	var samples []PhaseSample
	var warnings []Warning

	groupDir := filepath.Join(baseDir, group)
	if _, err := os.Stat(groupDir); err != nil {
		warnings = append(warnings, Warning{
			Group:  group,
			Bench:  "",
			Reason: fmt.Sprintf("timing source missing: %v", err),
		})
		return samples, warnings
	}

	for _, phase := range []string{PhaseSerialize, PhaseDeserialize} {
		path := filepath.Join(groupDir, phase, "new", estimatesFile)

		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, Warning{
				Group:  group,
				Bench:  phase,
				Reason: fmt.Sprintf("timing source missing: %v", err),
			})
			continue
		}

		estimate := gjson.GetBytes(data, pointEstimatePath)
		if !estimate.Exists() || estimate.Type != gjson.Number {
			warnings = append(warnings, Warning{
				Group:  group,
				Bench:  phase,
				Reason: fmt.Sprintf("malformed record: no numeric %q field", pointEstimatePath),
			})
			continue
		}

		samples = append(samples, PhaseSample{
			Name:            phase,
			PointEstimateNs: estimate.Float(),
		})
	}

	return samples, warnings
}
