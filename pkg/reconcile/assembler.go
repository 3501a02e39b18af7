package reconcile

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/foliobooks/folio/pkg/records"
)

var (
	nthEditionRE     = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)?\s+ed(?:ition\b|\.)`)
	editionNumberRE  = regexp.MustCompile(`(?i)\bed(?:ition|\.)\s+(\d+)\b`)
	ordinalEditionRE = regexp.MustCompile(`(?i)\b(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\s+ed(?:ition\b|\.)`)
)

var ordinalWords = map[string]int{
	"first":   1,
	"second":  2,
	"third":   3,
	"fourth":  4,
	"fifth":   5,
	"sixth":   6,
	"seventh": 7,
	"eighth":  8,
	"ninth":   9,
	"tenth":   10,
}

// editionBucket accumulates the records of one edition while the assembler
// runs. Buckets keep their creation order; the final sort is by edition
// number only.
type editionBucket struct {
	number  int
	members []records.ConsolidatedRecord
}

// Assemble partitions one work cluster's records into edition groups.
// Explicit edition markers seed the buckets; audiobooks are attached by year
// proximity, and everything else falls back to chronological assignment
// against the buckets' authoritative records.
func (svc *Service) Assemble(cluster records.WorkCluster) []records.EditionGroup {
	var buckets []*editionBucket
	byNumber := map[int]*editionBucket{}
	var unbucketed []records.ConsolidatedRecord

	// Step 1-2: explicit edition numbers seed the buckets.
	for _, rec := range cluster.Records {
		number, ok := svc.parseEditionNumber(rec)
		if !ok {
			unbucketed = append(unbucketed, rec)
			continue
		}
		bucket, exists := byNumber[number]
		if !exists {
			bucket = &editionBucket{number: number}
			byNumber[number] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.members = append(bucket.members, rec)
	}

	// Step 3: synthesize edition 1 from the chronologically earliest
	// unbucketed records when nothing claimed it explicitly.
	if _, hasFirst := byNumber[1]; !hasFirst && len(unbucketed) > 0 {
		first := &editionBucket{number: 1}
		unbucketed = svc.seedFirstEdition(first, unbucketed, len(buckets) > 0)
		if len(first.members) > 0 {
			byNumber[1] = first
			buckets = append(buckets, first)
		}
	}

	// Step 4: audiobooks attach to the bucket with the nearest year.
	var rest []records.ConsolidatedRecord
	for _, rec := range unbucketed {
		if isAudiobook(rec.Binding) && rec.Year() != 0 {
			if bucket := nearestBucket(buckets, rec.Year(), svc.cfg.AudiobookYearWindow); bucket != nil {
				bucket.members = append(bucket.members, rec)
				continue
			}
		}
		rest = append(rest, rec)
	}

	// Steps 5-6: chronological fallback for the remainder. Records with no
	// known year cannot be placed and are excluded from the output.
	assignByTimeline(buckets, rest)

	// Step 7: buckets become groups, newest edition first.
	groups := make([]records.EditionGroup, 0, len(buckets))
	for _, bucket := range buckets {
		groups = append(groups, bucketToGroup(bucket))
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].EditionNumber > groups[j].EditionNumber
	})

	return groups
}

// parseEditionNumber extracts an explicit edition number: the ISBN
// correction table wins, then the edition/content-version field, then the
// title. Numeric captures outside 1-99 are rejected as stray years.
func (svc *Service) parseEditionNumber(rec records.ConsolidatedRecord) (int, bool) {
	if rec.EditionOverride != nil {
		return *rec.EditionOverride, true
	}
	if number, ok := svc.parseEditionString(rec.Edition); ok {
		return number, true
	}
	return svc.parseEditionString(rec.Title)
}

func (svc *Service) parseEditionString(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	if m := nthEditionRE.FindStringSubmatch(s); m != nil {
		if number := svc.validEdition(m[1]); number > 0 {
			return number, true
		}
	}
	if m := editionNumberRE.FindStringSubmatch(s); m != nil {
		if number := svc.validEdition(m[1]); number > 0 {
			return number, true
		}
	}
	if m := ordinalEditionRE.FindStringSubmatch(s); m != nil {
		return ordinalWords[strings.ToLower(m[1])], true
	}

	return 0, false
}

func (svc *Service) validEdition(capture string) int {
	number, err := strconv.Atoi(capture)
	if err != nil || number < 1 || number > svc.cfg.MaxParsedEditionValue {
		return 0
	}
	return number
}

// seedFirstEdition moves the unbucketed records sharing the earliest known
// publication year (within the configured span) into the bucket. Audiobooks
// never seed an edition; they are later re-releases and are attached by year
// proximity instead, unless they are all there is and no explicit bucket
// exists. When no eligible record carries a year at all, every eligible
// record is assumed to be the first edition; there is no evidence of
// anything newer.
func (svc *Service) seedFirstEdition(bucket *editionBucket, unbucketed []records.ConsolidatedRecord, hasExplicitBuckets bool) []records.ConsolidatedRecord {
	eligible := func(rec records.ConsolidatedRecord) bool { return !isAudiobook(rec.Binding) }

	hasNonAudio := false
	for _, rec := range unbucketed {
		if eligible(rec) {
			hasNonAudio = true
			break
		}
	}
	if !hasNonAudio {
		if hasExplicitBuckets {
			return unbucketed
		}
		eligible = func(records.ConsolidatedRecord) bool { return true }
	}

	earliest := 0
	hasUndated := false
	for _, rec := range unbucketed {
		if !eligible(rec) {
			continue
		}
		if year := rec.Year(); year == 0 {
			hasUndated = true
		} else if earliest == 0 || year < earliest {
			earliest = year
		}
	}

	var remaining []records.ConsolidatedRecord
	for _, rec := range unbucketed {
		year := rec.Year()
		switch {
		case !eligible(rec):
			remaining = append(remaining, rec)
		case earliest == 0 && hasUndated:
			// Nothing is dated; everything eligible is the first edition.
			bucket.members = append(bucket.members, rec)
		case year != 0 && abs(year-earliest) <= svc.cfg.FirstEditionYearSpan:
			bucket.members = append(bucket.members, rec)
		default:
			remaining = append(remaining, rec)
		}
	}
	return remaining
}

// authoritativeRecord picks the member whose metadata the edition trusts
// most: highest binding authority, ties broken by earliest year.
func authoritativeRecord(bucket *editionBucket) records.ConsolidatedRecord {
	best := bucket.members[0]
	for _, rec := range bucket.members[1:] {
		bp, rp := records.BindingPriority(best.Binding), records.BindingPriority(rec.Binding)
		switch {
		case rp < bp:
			best = rec
		case rp == bp:
			bestYear, recYear := best.Year(), rec.Year()
			if recYear != 0 && (bestYear == 0 || recYear < bestYear) {
				best = rec
			}
		}
	}
	return best
}

func nearestBucket(buckets []*editionBucket, year, window int) *editionBucket {
	var nearest *editionBucket
	bestDelta := 0
	for _, bucket := range buckets {
		repYear := authoritativeRecord(bucket).Year()
		if repYear == 0 {
			continue
		}
		delta := abs(year - repYear)
		if delta > window {
			continue
		}
		if nearest == nil || delta < bestDelta {
			nearest = bucket
			bestDelta = delta
		}
	}
	return nearest
}

// assignByTimeline places each remaining record with a known year into the
// bucket whose interval [year_i, year_i+1) contains it. Years before the
// first interval land in the earliest bucket.
func assignByTimeline(buckets []*editionBucket, recs []records.ConsolidatedRecord) {
	type entry struct {
		bucket *editionBucket
		year   int
	}
	var timeline []entry
	for _, bucket := range buckets {
		if year := authoritativeRecord(bucket).Year(); year != 0 {
			timeline = append(timeline, entry{bucket, year})
		}
	}
	if len(timeline) == 0 {
		return
	}
	sort.SliceStable(timeline, func(i, j int) bool { return timeline[i].year < timeline[j].year })

	for _, rec := range recs {
		year := rec.Year()
		if year == 0 {
			continue
		}
		target := timeline[0].bucket
		for _, e := range timeline {
			if e.year <= year {
				target = e.bucket
			}
		}
		target.members = append(target.members, rec)
	}
}

func bucketToGroup(bucket *editionBucket) records.EditionGroup {
	group := records.EditionGroup{
		EditionNumber: bucket.number,
		EditionType:   editionType(bucket),
		Records:       bucket.members,
	}
	if year := authoritativeRecord(bucket).Year(); year != 0 {
		group.PublicationYear = &year
	}
	return group
}

// editionType derives a display label from explicit wording in the bucket's
// titles and edition fields, falling back to an ordinal label built from the
// edition number.
func editionType(bucket *editionBucket) string {
	for _, rec := range bucket.members {
		text := strings.ToLower(rec.Title + " " + rec.Edition)
		if m := ordinalEditionRE.FindStringSubmatch(text); m != nil {
			word := strings.ToLower(m[1])
			return strings.ToUpper(word[:1]) + word[1:] + " Edition"
		}
		for _, marker := range []string{"revised", "updated", "expanded"} {
			if strings.Contains(text, marker) {
				return strings.ToUpper(marker[:1]) + marker[1:] + " Edition"
			}
		}
		if strings.Contains(text, "unabridged") {
			return "Unabridged"
		}
	}
	return ordinalLabel(bucket.number)
}

func ordinalLabel(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s Edition", n, suffix)
}
