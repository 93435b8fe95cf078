package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeindiatransport/models"
	"safeindiatransport/workflow"
)

func dueBilty(number, status string, dueOffsetDays int) *models.Bilty {
	return &models.Bilty{
		BiltyNumber:        number,
		Status:             status,
		Date:               now,
		ExpectedDeliveryAt: now + int64(dueOffsetDays)*dayMs,
	}
}

func TestSummarizeBuckets(t *testing.T) {
	bilties := []*models.Bilty{
		bilty("BLTY-1", workflow.StatusCreated, 0),
		bilty("BLTY-2", workflow.StatusInTransit, 1),
		bilty("BLTY-3", workflow.StatusDelivered, 2),
		bilty("BLTY-4", workflow.StatusLoaded, 3),
		bilty("BLTY-5", workflow.StatusCancelled, 4),
	}
	customers := []*models.Party{{Name: "A"}, {Name: "B"}}

	s := Summarize(now, bilties, customers)

	assert.Equal(t, 5, s.TotalBilties)
	assert.Equal(t, 2, s.TotalCustomers)
	assert.Equal(t, 2, s.InProgress.Count) // created + in_transit; loaded is neither
	assert.Equal(t, 1, s.Completed.Count)
	assert.Equal(t, 0, s.Overdue.Count)
}

func TestSummarizeOverdueExcludesTerminal(t *testing.T) {
	bilties := []*models.Bilty{
		dueBilty("BLTY-1", workflow.StatusInTransit, -2), // past due, still moving
		dueBilty("BLTY-2", workflow.StatusDelivered, -2), // past due but delivered
		dueBilty("BLTY-3", workflow.StatusCancelled, -2), // past due but cancelled
		dueBilty("BLTY-4", workflow.StatusInTransit, 2),  // due in the future
		bilty("BLTY-5", workflow.StatusInTransit, 0),     // no due date at all
	}

	s := Summarize(now, bilties, nil)

	require.Equal(t, 1, s.Overdue.Count)
	assert.Equal(t, "BLTY-1", s.Overdue.Preview[0].BiltyNumber)

	for _, b := range s.Overdue.Preview {
		assert.NotEqual(t, workflow.StatusDelivered, b.Status)
		assert.NotEqual(t, workflow.StatusCancelled, b.Status)
	}
}

func TestSummarizePreviewCapped(t *testing.T) {
	var bilties []*models.Bilty
	for i := 0; i < 9; i++ {
		bilties = append(bilties, bilty(fmt.Sprintf("BLTY-%d", i), workflow.StatusDelivered, i))
	}

	s := Summarize(now, bilties, nil)

	assert.Equal(t, 9, s.Completed.Count, "count covers the full matching set")
	require.Len(t, s.Completed.Preview, PreviewSize)
	// preview keeps the collection order
	for i, b := range s.Completed.Preview {
		assert.Equal(t, fmt.Sprintf("BLTY-%d", i), b.BiltyNumber)
	}
}

func TestSummarizeInProgressAndCompletedDisjoint(t *testing.T) {
	bilties := []*models.Bilty{
		bilty("BLTY-1", workflow.StatusCreated, 0),
		bilty("BLTY-2", workflow.StatusDelivered, 0),
	}
	s := Summarize(now, bilties, nil)

	for _, p := range s.InProgress.Preview {
		for _, c := range s.Completed.Preview {
			assert.NotEqual(t, p.BiltyNumber, c.BiltyNumber)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(now, nil, nil)
	assert.Equal(t, 0, s.TotalBilties)
	assert.Equal(t, 0, s.InProgress.Count)
	assert.Empty(t, s.InProgress.Preview)
}
