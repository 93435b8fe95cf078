package query

import (
	"safeindiatransport/models"
	"safeindiatransport/workflow"
)

// PreviewSize caps the per-bucket preview lists on the dashboard.
const PreviewSize = 5

// Bucket is a dashboard bucket: the full matching count plus a preview of
// the first matches in collection order.
type Bucket struct {
	Count   int             `json:"count"`
	Preview []*models.Bilty `json:"preview"`
}

func (b *Bucket) add(bilty *models.Bilty) {
	b.Count++
	if len(b.Preview) < PreviewSize {
		b.Preview = append(b.Preview, bilty)
	}
}

// Summary is the admin dashboard overview.
type Summary struct {
	TotalBilties   int    `json:"totalBilties"`
	TotalCustomers int    `json:"totalCustomers"`
	InProgress     Bucket `json:"inProgress"`
	Completed      Bucket `json:"completed"`
	Overdue        Bucket `json:"overdue"`
}

// Summarize derives the dashboard buckets from the full bilty collection.
// A bilty may land in more than one bucket: in-progress and completed are
// disjoint by status, but overdue overlaps in-progress. Bilties without a
// due date are never overdue.
func Summarize(now int64, bilties []*models.Bilty, customers []*models.Party) Summary {
	s := Summary{
		TotalBilties:   len(bilties),
		TotalCustomers: len(customers),
	}

	for _, b := range bilties {
		switch b.Status {
		case workflow.StatusCreated, workflow.StatusInTransit:
			s.InProgress.add(b)
		case workflow.StatusDelivered:
			s.Completed.add(b)
		}

		if b.ExpectedDeliveryAt > 0 && b.ExpectedDeliveryAt < now &&
			b.Status != workflow.StatusDelivered && b.Status != workflow.StatusCancelled {
			s.Overdue.add(b)
		}
	}
	return s
}
