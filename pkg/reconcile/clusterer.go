package reconcile

import (
	"regexp"
	"strings"

	"github.com/foliobooks/folio/pkg/records"
	"github.com/foliobooks/folio/pkg/textmatch"
)

// malformedTitleRE recognizes title shapes produced by provider data-entry
// defects: embedded separators, doubled dashes, trailing ellipses.
var malformedTitleRE = regexp.MustCompile(`--|\.\.\.|[;|]`)

// Cluster groups consolidated records into same-work clusters. Each record
// is compared against every existing cluster's representative, the
// deep-normalized title of the cluster's first record, and joins the first
// cluster that passes any acceptance rule. A single left-to-right pass;
// membership is never revisited.
func (svc *Service) Cluster(recs []records.ConsolidatedRecord) []records.WorkCluster {
	var clusters []*records.WorkCluster

	for _, rec := range recs {
		norm := textmatch.NormalizeTitle(rec.Title)

		placed := false
		for _, cluster := range clusters {
			if svc.belongsToCluster(rec, norm, cluster) {
				cluster.Records = append(cluster.Records, rec)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, &records.WorkCluster{
				Representative: norm,
				Records:        []records.ConsolidatedRecord{rec},
			})
		}
	}

	out := make([]records.WorkCluster, 0, len(clusters))
	for _, cluster := range clusters {
		out = append(out, *cluster)
	}

	return out
}

// belongsToCluster applies the acceptance rules in fixed order. The rules
// trade similarity strength against corroborating evidence: weaker string
// similarity needs a core-word match or a consistent publisher to count.
func (svc *Service) belongsToCluster(rec records.ConsolidatedRecord, norm string, cluster *records.WorkCluster) bool {
	rep := cluster.Representative
	first := cluster.Records[0]

	sim := textmatch.TitleSimilarity(norm, rep)
	if sim > svc.cfg.ClusterStrongSimilarity {
		return true
	}

	substring := norm != "" && rep != "" && (strings.Contains(norm, rep) || strings.Contains(rep, norm))
	if substring && sim > svc.cfg.ClusterSubstringSimilarity {
		return true
	}

	core := textmatch.CoreMatch(norm, rep)
	publisherOK := !publishersContradict(rec.Publisher, first.Publisher)

	if core && publisherOK && sim > svc.cfg.ClusterCoreSimilarity {
		return true
	}
	if sim > svc.cfg.ClusterModerateSimilarity && publisherOK {
		return true
	}
	if core && sim > svc.cfg.ClusterSubstringSimilarity {
		return true
	}

	// Last resort for known malformed title shapes: enough shared core
	// words is taken as evidence even when the similarity metrics fail.
	if (malformedTitleRE.MatchString(rec.Title) || malformedTitleRE.MatchString(first.Title)) &&
		textmatch.SharedWordCount(norm, rep) >= 2 {
		return true
	}

	return false
}

// publishersContradict reports whether two publisher strings name clearly
// different publishers. Missing publishers never contradict, and imprint
// variations ("Wiley" vs "John Wiley & Sons") are tolerated via substring
// matching.
func publishersContradict(a, b string) bool {
	pa := strings.ToLower(strings.TrimSpace(a))
	pb := strings.ToLower(strings.TrimSpace(b))
	if pa == "" || pb == "" || pa == pb {
		return false
	}
	return !strings.Contains(pa, pb) && !strings.Contains(pb, pa)
}
