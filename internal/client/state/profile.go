package state

import (
	"sync"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

// ProfileStore holds the current user's profile, or nil before the first
// fetch and after logout.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *models.UserProfile
	seq     uint64

	subMu  sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{subs: make(map[int]*subscriber)}
}

// Profile returns a copy of the profile, or nil.
func (s *ProfileStore) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.profile)
}

// SetProfile replaces the profile wholesale. A nil p clears it.
func (s *ProfileStore) SetProfile(p *models.UserProfile) {
	s.mu.Lock()
	s.profile = clone(p)
	s.seq++
	seq, snapshot := s.seq, clone(s.profile)
	s.mu.Unlock()
	s.notify(seq, snapshot)
}

// UpdateProfile shallow-merges patch into the profile. It is a no-op when no
// profile is loaded.
func (s *ProfileStore) UpdateProfile(patch models.ProfileUpdate) {
	s.mutate(func(p *models.UserProfile) {
		*p = patch.Apply(*p)
	})
}

func (s *ProfileStore) ClearProfile() {
	s.SetProfile(nil)
}

// Subscribe registers fn to be called after every mutation with a copy of
// the new profile. Calls for one subscriber never overlap and arrive in
// mutation order; a snapshot superseded before delivery is skipped, so the
// last call always carries the current profile. A mutation made while fn is
// running on another goroutine is delivered by that goroutine. The returned
// function unregisters fn.
func (s *ProfileStore) Subscribe(fn func(*models.UserProfile)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = &subscriber{fn: fn}
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *ProfileStore) SetEmail(v string) {
	s.mutate(func(p *models.UserProfile) { p.Email = v })
}

func (s *ProfileStore) SetFullName(v string) {
	s.mutate(func(p *models.UserProfile) { p.FullName = v })
}

func (s *ProfileStore) SetGender(v string) {
	s.mutate(func(p *models.UserProfile) { p.Gender = v })
}

func (s *ProfileStore) SetDateOfBirth(v string) {
	s.mutate(func(p *models.UserProfile) { p.DateOfBirth = v })
}

func (s *ProfileStore) SetProfilePicture(v string) {
	s.mutate(func(p *models.UserProfile) { p.ProfilePictureURL = v })
}

func (s *ProfileStore) SetInterests(v []string) {
	v = append([]string(nil), v...)
	s.mutate(func(p *models.UserProfile) { p.Interests = v })
}

func (s *ProfileStore) SetSkills(v []string) {
	v = append([]string(nil), v...)
	s.mutate(func(p *models.UserProfile) { p.Skills = v })
}

func (s *ProfileStore) SetBio(v string) {
	s.mutate(func(p *models.UserProfile) { p.Bio = v })
}

func (s *ProfileStore) SetSkillLevel(v models.SkillLevel) {
	s.mutate(func(p *models.UserProfile) { p.SkillLevel = v })
}

func (s *ProfileStore) SetLearningGoal(v string) {
	s.mutate(func(p *models.UserProfile) { p.LearningGoal = v })
}

func (s *ProfileStore) SetSupportStyle(v string) {
	s.mutate(func(p *models.UserProfile) { p.SupportStyle = v })
}

func (s *ProfileStore) SetOnboardingCompleted(v bool) {
	s.mutate(func(p *models.UserProfile) { p.OnboardingCompleted = v })
}

// mutate applies fn to the loaded profile; nothing happens (and nobody is
// notified) when no profile is loaded.
func (s *ProfileStore) mutate(fn func(p *models.UserProfile)) {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return
	}
	fn(s.profile)
	s.seq++
	seq, snapshot := s.seq, clone(s.profile)
	s.mu.Unlock()
	s.notify(seq, snapshot)
}

// notify hands the snapshot taken at seq to every subscriber.
func (s *ProfileStore) notify(seq uint64, p *models.UserProfile) {
	s.subMu.Lock()
	subs := make([]*subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.deliver(seq, p)
	}
}

type subscriber struct {
	fn func(*models.UserProfile)

	mu        sync.Mutex
	running   bool
	pending   *models.UserProfile
	latest    uint64
	delivered uint64
}

// deliver queues p unless a newer snapshot was already seen. The first
// caller to find the subscriber idle drains the queue; everyone else returns
// at once.
func (sub *subscriber) deliver(seq uint64, p *models.UserProfile) {
	sub.mu.Lock()
	if seq <= sub.latest {
		sub.mu.Unlock()
		return
	}
	sub.pending, sub.latest = p, seq
	if sub.running {
		sub.mu.Unlock()
		return
	}

	sub.running = true
	for sub.delivered < sub.latest {
		next := sub.pending
		sub.delivered = sub.latest
		sub.mu.Unlock()
		sub.fn(clone(next))
		sub.mu.Lock()
	}
	sub.running = false
	sub.mu.Unlock()
}

func clone(p *models.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}
	c := p.Clone()
	return &c
}
