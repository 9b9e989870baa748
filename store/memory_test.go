package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mentorhub-chat/auth"
	"mentorhub-chat/models"
)

func TestMemoryAppendAssignsIdentityAndTimestamp(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	msg, err := mem.AppendMessage("lobby", "remo", "hello")
	req.NoError(err)
	req.NotEmpty(msg.ID)
	req.Equal("lobby", msg.ConversationID)
	req.Equal("remo", msg.SenderID)
	req.Equal("hello", msg.Content)
	req.False(msg.CreatedAt.IsZero())
}

func TestMemoryHistoryCapAndOrder(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	const total = models.HistoryLimit + 50
	for i := 0; i < total; i++ {
		_, err := mem.AppendMessage("lobby", "remo", fmt.Sprintf("msg-%d", i))
		req.NoError(err)
	}

	history, err := mem.History("lobby")
	req.NoError(err)
	req.Len(history, models.HistoryLimit)

	// Oldest of the retained window first, newest last.
	req.Equal(fmt.Sprintf("msg-%d", total-models.HistoryLimit), history[0].Content)
	req.Equal(fmt.Sprintf("msg-%d", total-1), history[len(history)-1].Content)

	for i := 1; i < len(history); i++ {
		req.False(history[i].CreatedAt.Before(history[i-1].CreatedAt))
	}
}

func TestMemoryHistoryEmptyConversation(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	history, err := mem.History("nobody-here")
	req.NoError(err)
	req.NotNil(history)
	req.Empty(history)
}

func TestMemoryHistoryIsACopy(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	_, err := mem.AppendMessage("lobby", "remo", "original")
	req.NoError(err)

	history, err := mem.History("lobby")
	req.NoError(err)
	history[0].Content = "mutated"

	again, err := mem.History("lobby")
	req.NoError(err)
	req.Equal("original", again[0].Content)
}

func TestMemoryConcurrentAppends(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	const writers = 8
	const perWriter = 20

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, _ = mem.AppendMessage("busy", fmt.Sprintf("writer-%d", w), "x")
			}
		}(w)
	}
	wg.Wait()

	history, err := mem.History("busy")
	req.NoError(err)
	req.Len(history, writers*perWriter)

	seen := make(map[string]bool, len(history))
	for _, msg := range history {
		req.False(seen[msg.ID], "duplicate message id %s", msg.ID)
		seen[msg.ID] = true
	}
}

func TestMemoryConversationsAreIsolated(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	_, err := mem.AppendMessage("room-a", "remo", "for a")
	req.NoError(err)
	_, err = mem.AppendMessage("room-b", "remo", "for b")
	req.NoError(err)

	a, err := mem.History("room-a")
	req.NoError(err)
	req.Len(a, 1)
	req.Equal("for a", a[0].Content)
}

func TestMemoryUsers(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	_, err := mem.FindUser("remo")
	req.ErrorIs(err, ErrNotFound)

	created, err := mem.CreateUser("remo", "hash")
	req.NoError(err)
	req.Equal("remo", created.Username)

	_, err = mem.CreateUser("remo", "other-hash")
	req.ErrorIs(err, ErrConflict)

	found, err := mem.FindUser("remo")
	req.NoError(err)
	req.Equal("hash", found.PasswordHash)
}

func TestMemoryDashboard(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	_, err := mem.Dashboard()
	req.ErrorIs(err, ErrNotFound)

	want := models.Dashboard{
		Summary:  models.Summary{RunningScore: 1, RunningTotal: 2, MeterPercent: 3},
		Calendar: models.Calendar{MonthLabel: "July 2022", ActiveDay: 14},
	}
	req.NoError(mem.SaveDashboard(want))

	got, err := mem.Dashboard()
	req.NoError(err)
	req.Equal(want, got)
}

func TestSeedUsers(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	req.NoError(SeedUsers(mem))

	for _, username := range []string{"remo", "juliet"} {
		user, err := mem.FindUser(username)
		req.NoError(err)
		req.NotEqual("1234", user.PasswordHash)
		req.True(auth.ComparePassword("1234", user.PasswordHash))
	}

	// Seeding again must not touch existing accounts.
	before, err := mem.FindUser("remo")
	req.NoError(err)
	req.NoError(SeedUsers(mem))
	after, err := mem.FindUser("remo")
	req.NoError(err)
	req.Equal(before.PasswordHash, after.PasswordHash)
}

func TestSeedDashboard(t *testing.T) {
	req := require.New(t)
	mem := NewMemory()

	req.NoError(SeedDashboard(mem))

	dash, err := mem.Dashboard()
	req.NoError(err)
	req.NotEmpty(dash.Mentors)
	req.NotEmpty(dash.UpcomingTasks)
	req.NotNil(dash.TodayTask)
	req.Equal(models.TaskTypeToday, dash.TodayTask.Type)

	// Idempotent: a second seed leaves the stored aggregate alone.
	req.NoError(mem.SaveDashboard(models.Dashboard{Summary: models.Summary{RunningScore: 99}}))
	req.NoError(SeedDashboard(mem))
	kept, err := mem.Dashboard()
	req.NoError(err)
	req.Equal(99, kept.Summary.RunningScore)
}
