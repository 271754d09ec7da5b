package service

import (
	"fmt"
	"sync"
	"time"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/logger"
	"sales-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// ReminderScheduler maps reminder records to scheduled local notifications.
// The reminder-id to notification-handle table lives in memory for the
// process lifetime: it is NOT persisted, so a restart requires the full
// SyncReminders path. Every notifier error is logged and swallowed; a failed
// schedule or cancel never aborts the caller.
type ReminderScheduler struct {
	repo     repository.ReminderRepositoryInterface
	notifier Notifier
	log      *logger.Logger

	mu      sync.Mutex
	handles map[uuid.UUID]string

	syncWindow time.Duration
	now        func() time.Time
}

// NewReminderScheduler creates a new reminder scheduler. syncDays bounds the
// horizon of SyncReminders.
func NewReminderScheduler(repo repository.ReminderRepositoryInterface, notifier Notifier, syncDays int) *ReminderScheduler {
	if syncDays <= 0 {
		syncDays = 30
	}
	return &ReminderScheduler{
		repo:       repo,
		notifier:   notifier,
		log:        logger.WithComponent("reminder-scheduler"),
		handles:    make(map[uuid.UUID]string),
		syncWindow: time.Duration(syncDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// Schedule registers a notification for the reminder. A reminder whose due
// time is already in the past is skipped silently; the source treats past-due
// reminders as skipped rather than firing them immediately.
func (s *ReminderScheduler) Schedule(reminder *models.Reminder) {
	if reminder == nil || reminder.Completed {
		return
	}
	if !reminder.DueAt.After(s.now()) {
		s.log.WithField("reminder_id", reminder.ID).Debug("skipping past-due reminder")
		return
	}

	handle, err := s.notifier.Schedule(
		reminder.Title,
		reminder.Description,
		map[string]string{"reminder_id": reminder.ID.String()},
		reminder.DueAt,
	)
	if err != nil {
		s.log.WithError(err).WithField("reminder_id", reminder.ID).Warn("failed to schedule notification")
		return
	}

	s.mu.Lock()
	s.handles[reminder.ID] = handle
	s.mu.Unlock()
}

// Cancel removes the mapping entry and cancels the underlying notification.
// A reminder without a mapping is a no-op, not an error.
func (s *ReminderScheduler) Cancel(reminderID uuid.UUID) {
	s.mu.Lock()
	handle, ok := s.handles[reminderID]
	if ok {
		delete(s.handles, reminderID)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	if err := s.notifier.Cancel(handle); err != nil {
		s.log.WithError(err).WithField("reminder_id", reminderID).Warn("failed to cancel notification")
	}
}

// SyncReminders rebuilds the notification table from scratch: it cancels
// every currently scheduled notification unconditionally, then re-schedules
// all incomplete reminders due within the sync window. This is a full
// cancel-and-rebuild, not an incremental diff; notification volume is small
// and the operation runs at process start or on manual trigger, not on a hot
// path. Returns the number of reminders scheduled.
func (s *ReminderScheduler) SyncReminders() (int, error) {
	s.mu.Lock()
	stale := make(map[uuid.UUID]string, len(s.handles))
	for id, handle := range s.handles {
		stale[id] = handle
	}
	s.handles = make(map[uuid.UUID]string)
	s.mu.Unlock()

	for id, handle := range stale {
		if err := s.notifier.Cancel(handle); err != nil {
			s.log.WithError(err).WithField("reminder_id", id).Warn("failed to cancel notification during sync")
		}
	}

	from := s.now()
	to := from.Add(s.syncWindow)
	reminders, err := s.repo.GetIncompleteDueBetween(from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch upcoming reminders: %w", err)
	}

	for i := range reminders {
		s.Schedule(&reminders[i])
	}

	scheduled := s.ScheduledCount()
	s.log.WithField("scheduled", scheduled).Info("reminder notifications resynchronized")
	return scheduled, nil
}

// SendImmediate schedules a notification about one second in the future.
// Diagnostic use only.
func (s *ReminderScheduler) SendImmediate(title, body string) {
	if _, err := s.notifier.Schedule(title, body, nil, s.now().Add(time.Second)); err != nil {
		s.log.WithError(err).Warn("failed to send immediate notification")
	}
}

// ScheduledCount returns the number of currently scheduled notifications
func (s *ReminderScheduler) ScheduledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// TimerNotifier delivers notifications via process-local timers, logging the
// notification when it fires. It is the default Notifier when no external
// delivery channel is configured.
type TimerNotifier struct {
	log *logger.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewTimerNotifier creates a new timer-backed notifier
func NewTimerNotifier() *TimerNotifier {
	return &TimerNotifier{
		log:    logger.WithComponent("notifier"),
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms a timer for the notification and returns its handle
func (n *TimerNotifier) Schedule(title, body string, payload map[string]string, fireAt time.Time) (string, error) {
	handle := uuid.New().String()
	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	n.mu.Lock()
	n.timers[handle] = time.AfterFunc(delay, func() {
		n.mu.Lock()
		delete(n.timers, handle)
		n.mu.Unlock()

		n.log.WithFields(map[string]interface{}{
			"title":   title,
			"body":    body,
			"payload": payload,
		}).Info("notification fired")
	})
	n.mu.Unlock()

	return handle, nil
}

// Cancel stops the timer for the handle. An unknown handle is a no-op.
func (n *TimerNotifier) Cancel(handle string) error {
	n.mu.Lock()
	timer, ok := n.timers[handle]
	if ok {
		delete(n.timers, handle)
	}
	n.mu.Unlock()

	if ok {
		timer.Stop()
	}
	return nil
}
