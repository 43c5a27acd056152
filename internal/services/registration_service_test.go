package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	topics  map[string]*models.Topic
	members map[string]*models.TopicMember
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		topics:  make(map[string]*models.Topic),
		members: make(map[string]*models.TopicMember),
	}
}

func (s *fakeStore) addTopic(topic *models.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[topic.ID] = topic
}

func (s *fakeStore) GetTopic(id string) (*models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	topic, ok := s.topics[id]
	if !ok {
		return nil, nil
	}
	copied := *topic
	return &copied, nil
}

func (s *fakeStore) GetLiveMember(topicID, studentID string) (*models.TopicMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.TopicID == topicID && m.StudentID == studentID && m.IsLive() {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CountApprovedMembers(topicID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, m := range s.members {
		if m.TopicID == topicID && m.Status == models.MemberStatusApproved {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CountLiveByStudent(studentID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, m := range s.members {
		if m.StudentID == studentID && m.IsLive() {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CreateMember(member *models.TopicMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	member.ID = fmt.Sprintf("member-%d", s.nextID)
	member.CreatedAt = time.Now()
	copied := *member
	s.members[member.ID] = &copied
	return nil
}

func (s *fakeStore) UpdateMember(member *models.TopicMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *member
	s.members[member.ID] = &copied
	return nil
}

func (s *fakeStore) DeleteMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.members, id)
	return nil
}

func (s *fakeStore) ListMembers(topicID string) ([]models.TopicMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TopicMember
	for _, m := range s.members {
		if m.TopicID == topicID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *fakeStore) ListByStudent(studentID string) ([]models.TopicMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TopicMember
	for _, m := range s.members {
		if m.StudentID == studentID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

type notifyCall struct {
	userID    string
	notifType string
}

func (n *fakeNotifier) Notify(userID, notifType, title, message string, metadata map[string]interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifyCall{userID: userID, notifType: notifType})
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func (n *fakeNotifier) last() notifyCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[len(n.calls)-1]
}

func openPeriod() *models.RegistrationPeriod {
	return &models.RegistrationPeriod{
		ID:                "period-1",
		Status:            models.PeriodStatusActive,
		AllowRegistration: true,
		StartDate:         time.Now().Add(-time.Hour),
		EndDate:           time.Now().Add(time.Hour),
	}
}

func closedPeriod() *models.RegistrationPeriod {
	p := openPeriod()
	p.Status = models.PeriodStatusClosed
	return p
}

func testTopic(id string, maxMembers int, period *models.RegistrationPeriod) *models.Topic {
	instructorID := "teacher-1"
	return &models.Topic{
		ID:                 id,
		Title:              "Thesis topic " + id,
		Status:             models.TopicStatusApproved,
		MaxMembers:         maxMembers,
		InstructorID:       &instructorID,
		RegistrationPeriod: period,
	}
}

func newTestService() (*RegistrationService, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	return NewRegistrationService(store, notifier), store, notifier
}

func TestRegister(t *testing.T) {
	t.Run("creates pending member and notifies instructor", func(t *testing.T) {
		svc, store, notifier := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		member, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		assert.Equal(t, models.MemberStatusPending, member.Status)
		assert.Equal(t, "student-1", member.StudentID)

		require.Equal(t, 1, notifier.count())
		assert.Equal(t, "teacher-1", notifier.last().userID)
		assert.Equal(t, models.NotificationTypeRegistration, notifier.last().notifType)
	})

	t.Run("unknown topic", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Register("student-1", "missing")
		assert.ErrorIs(t, err, ErrTopicNotFound)
	})

	t.Run("pending topic is not open for registration", func(t *testing.T) {
		svc, store, _ := newTestService()
		topic := testTopic("topic-1", 2, openPeriod())
		topic.Status = models.TopicStatusPending
		store.addTopic(topic)

		_, err := svc.Register("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrTopicNotApproved)
	})

	t.Run("closed period", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, closedPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("period outside time window", func(t *testing.T) {
		svc, store, _ := newTestService()
		period := openPeriod()
		period.StartDate = time.Now().Add(time.Hour)
		period.EndDate = time.Now().Add(2 * time.Hour)
		store.addTopic(testTopic("topic-1", 2, period))

		_, err := svc.Register("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("period flag disables registration", func(t *testing.T) {
		svc, store, _ := newTestService()
		period := openPeriod()
		period.AllowRegistration = false
		store.addTopic(testTopic("topic-1", 2, period))

		_, err := svc.Register("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("duplicate registration on same topic", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Register("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("live registration on another topic blocks", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))
		store.addTopic(testTopic("topic-2", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Register("student-1", "topic-2")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("full topic rejects new requests", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 1, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)

		_, err = svc.Register("student-2", "topic-1")
		assert.ErrorIs(t, err, ErrTopicFull)
	})

	t.Run("rejected student may register again", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionReject, "incomplete plan")
		require.NoError(t, err)

		member, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		assert.Equal(t, models.MemberStatusPending, member.Status)
	})
}

func TestCancel(t *testing.T) {
	t.Run("deletes pending request", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)

		require.NoError(t, svc.Cancel("student-1", "topic-1"))

		member, err := store.GetLiveMember("topic-1", "student-1")
		require.NoError(t, err)
		assert.Nil(t, member)
	})

	t.Run("no pending request", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		err := svc.Cancel("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrNoPendingRequest)
	})

	t.Run("approved membership cannot be cancelled", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)

		err = svc.Cancel("student-1", "topic-1")
		assert.ErrorIs(t, err, ErrNoPendingRequest)
	})
}

func TestDecide(t *testing.T) {
	t.Run("approve records decision and notifies student", func(t *testing.T) {
		svc, store, notifier := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)

		member, err := svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "well prepared")
		require.NoError(t, err)
		assert.Equal(t, models.MemberStatusApproved, member.Status)
		assert.Equal(t, "well prepared", member.Feedback)
		require.NotNil(t, member.DecidedBy)
		assert.Equal(t, "teacher-1", *member.DecidedBy)
		assert.NotNil(t, member.DecidedAt)

		assert.Equal(t, "student-1", notifier.last().userID)
		assert.Equal(t, models.NotificationTypeDecision, notifier.last().notifType)
	})

	t.Run("reject keeps record with feedback", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)

		member, err := svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionReject, "scope too broad")
		require.NoError(t, err)
		assert.Equal(t, models.MemberStatusRejected, member.Status)
		assert.Equal(t, "scope too broad", member.Feedback)

		// Rejected records stay visible to the student
		records, err := svc.ListStudentRegistrations("student-1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.MemberStatusRejected, records[0].Status)
	})

	t.Run("only the instructor may decide", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)

		_, err = svc.Decide("teacher-2", "student-1", "topic-1", models.DecisionApprove, "")
		assert.ErrorIs(t, err, ErrNotInstructor)
	})

	t.Run("no pending request", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		assert.ErrorIs(t, err, ErrNoPendingRequest)
	})

	t.Run("approval at capacity fails and leaves the request pending", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 1, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Register("student-2", "topic-1")
		require.NoError(t, err)

		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)

		_, err = svc.Decide("teacher-1", "student-2", "topic-1", models.DecisionApprove, "")
		assert.ErrorIs(t, err, ErrTopicFull)

		member, err := store.GetLiveMember("topic-1", "student-2")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, models.MemberStatusPending, member.Status)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)

		_, err = svc.Decide("teacher-1", "student-1", "topic-1", "defer", "")
		assert.Error(t, err)
	})
}

func TestRemove(t *testing.T) {
	t.Run("frees a capacity slot", func(t *testing.T) {
		svc, store, notifier := newTestService()
		store.addTopic(testTopic("topic-1", 1, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)

		require.NoError(t, svc.Remove("teacher-1", "student-1", "topic-1", "switched topics"))
		assert.Equal(t, models.NotificationTypeRemoval, notifier.last().notifType)

		// The slot is free again
		_, err = svc.Register("student-2", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-2", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)
	})

	t.Run("only approved members can be removed", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)

		err = svc.Remove("teacher-1", "student-1", "topic-1", "")
		assert.ErrorIs(t, err, ErrNoApprovedMember)
	})

	t.Run("only the instructor may remove", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)

		err = svc.Remove("teacher-2", "student-1", "topic-1", "")
		assert.ErrorIs(t, err, ErrNotInstructor)
	})
}

func TestEligibility(t *testing.T) {
	t.Run("open topic is eligible", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 2, openPeriod()))

		eligibility, err := svc.Eligibility("student-1", "topic-1")
		require.NoError(t, err)
		assert.True(t, eligibility.CanRegister)
		assert.Empty(t, eligibility.Reason)
	})

	t.Run("reports the blocking reason", func(t *testing.T) {
		svc, store, _ := newTestService()
		store.addTopic(testTopic("topic-1", 1, openPeriod()))
		store.addTopic(testTopic("topic-2", 1, closedPeriod()))

		_, err := svc.Register("student-1", "topic-1")
		require.NoError(t, err)
		_, err = svc.Decide("teacher-1", "student-1", "topic-1", models.DecisionApprove, "")
		require.NoError(t, err)

		eligibility, err := svc.Eligibility("student-2", "topic-1")
		require.NoError(t, err)
		assert.False(t, eligibility.CanRegister)
		assert.NotEmpty(t, eligibility.Reason)

		eligibility, err = svc.Eligibility("student-2", "topic-2")
		require.NoError(t, err)
		assert.False(t, eligibility.CanRegister)
		assert.NotEmpty(t, eligibility.Reason)
	})
}

func TestConcurrentApprovalsRespectCapacity(t *testing.T) {
	svc, store, _ := newTestService()
	const maxMembers = 3
	const students = 10
	store.addTopic(testTopic("topic-1", maxMembers, openPeriod()))

	for i := 0; i < students; i++ {
		_, err := svc.Register(fmt.Sprintf("student-%d", i), "topic-1")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	var approved, full int64
	var mu sync.Mutex
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Decide("teacher-1", fmt.Sprintf("student-%d", i), "topic-1", models.DecisionApprove, "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case err == ErrTopicFull:
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(maxMembers), approved)
	assert.Equal(t, int64(students-maxMembers), full)

	count, err := store.CountApprovedMembers("topic-1")
	require.NoError(t, err)
	assert.Equal(t, int64(maxMembers), count)
}
