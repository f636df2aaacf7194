package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dm/idxreport/internal/model"
)

// Date suffix patterns for index family detection.
// Priority order: daily checked first to avoid misclassifying YYYY.MM.DD as monthly.
var (
	reIndexDaily   = regexp.MustCompile(`^(.+)[.\-_](\d{4})[.\-](\d{2})[.\-](\d{2})$`)
	reIndexWeekly  = regexp.MustCompile(`^(.+)[.\-_](\d{4})[.\-][Ww](\d{1,2})$`)
	reIndexMonthly = regexp.MustCompile(`^(.+)[.\-_](\d{4})[.\-](\d{2})$`)
)

// FamilyName strips a trailing daily, weekly or monthly date suffix from an
// index name. Names without a date suffix are returned unchanged.
func FamilyName(name string) string {
	for _, re := range []*regexp.Regexp{reIndexDaily, reIndexWeekly, reIndexMonthly} {
		if m := re.FindStringSubmatch(name); m != nil {
			return m[1]
		}
	}
	return name
}

// GroupFamilies folds dated indices into one record per family, summing sizes
// and primary shards. Day is the newest day seen in the family. The result is
// sorted by family name and never nil.
func GroupFamilies(records []model.Index) []model.Index {
	byName := make(map[string]*model.Index)
	for _, r := range records {
		name := FamilyName(r.Name)
		fam, ok := byName[name]
		if !ok {
			byName[name] = &model.Index{
				Name:      name,
				Day:       r.Day,
				Shards:    r.Shards,
				SizeBytes: r.SizeBytes,
			}
			continue
		}
		fam.Shards += r.Shards
		fam.SizeBytes += r.SizeBytes
		if r.Day.After(fam.Day) {
			fam.Day = r.Day
		}
	}

	out := make([]model.Index, 0, len(byName))
	for _, fam := range byName {
		out = append(out, *fam)
	}
	sort.Slice(out, func(i, j int) bool {
		an, bn := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if an != bn {
			return an < bn
		}
		return out[i].Name < out[j].Name
	})
	return out
}
