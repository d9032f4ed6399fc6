package scorecardservice

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const dateLayout = "2006-01-02"

// NormalizeDatePlayed turns whatever date string the extraction produced into
// YYYY-MM-DD. Scorecards carry dates in every format imaginable, so after the
// canonical layout a natural-language pass is tried before defaulting to the
// current date (the same default the interactive resolution step uses for an
// empty date).
func NormalizeDatePlayed(raw string, now time.Time) string {
	if raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			return t.Format(dateLayout)
		}
		for _, layout := range []string{"01/02/2006", "1/2/2006", "January 2, 2006", "Jan 2, 2006", "02-01-2006"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format(dateLayout)
			}
		}

		w := when.New(nil)
		w.Add(en.All...)
		w.Add(common.All...)
		if result, err := w.Parse(raw, now); err == nil && result != nil {
			return result.Time.Format(dateLayout)
		}
	}
	return now.Format(dateLayout)
}
