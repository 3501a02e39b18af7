package reconcile

import (
	"context"

	"github.com/foliobooks/folio/pkg/records"
	"github.com/robinjoseph08/golib/logger"
)

// Reconcile runs the full pipeline: clean, normalize, consolidate, cluster,
// assemble editions per cluster, and attach the best descriptive metadata to
// each group. Clusters appear in discovery order; within a cluster, groups
// are sorted newest edition first.
//
// The context carries only the logger. The engine is synchronous and
// CPU-bound; callers impose deadlines externally.
func (svc *Service) Reconcile(ctx context.Context, raws []records.RawRecord) []records.EditionGroup {
	log := logger.FromContext(ctx)

	cleaned := svc.Clean(raws)

	normalized := make([]records.NormalizedRecord, 0, len(cleaned))
	for _, rec := range cleaned {
		normalized = append(normalized, svc.Normalize(rec))
	}

	consolidated := svc.Consolidate(normalized)
	clusters := svc.Cluster(consolidated)

	groups := []records.EditionGroup{}
	for _, cluster := range clusters {
		for _, group := range svc.Assemble(cluster) {
			group.Metadata = svc.BestMetadata(group.Records)
			groups = append(groups, group)
		}
	}

	log.Debug("reconciled records", logger.Data{
		"raw":          len(raws),
		"cleaned":      len(cleaned),
		"consolidated": len(consolidated),
		"clusters":     len(clusters),
		"groups":       len(groups),
	})

	return groups
}
