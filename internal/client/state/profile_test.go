package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:     "u1",
		Email:      "a@b.com",
		FullName:   "ada lovelace",
		Interests:  []string{"go", "sql"},
		Skills:     []string{"math"},
		Bio:        "old",
		SkillLevel: models.SkillLevelIntermediate,
	}
}

func ptr[T any](v T) *T { return &v }

func TestUpdateProfile_NilIsNoop(t *testing.T) {
	s := NewProfileStore()
	calls := 0
	s.Subscribe(func(*models.UserProfile) { calls++ })

	s.UpdateProfile(models.ProfileUpdate{Bio: ptr("x")})

	assert.Nil(t, s.Profile())
	assert.Zero(t, calls)
}

func TestUpdateProfile_OnlyPatchedFieldsChange(t *testing.T) {
	s := NewProfileStore()
	s.SetProfile(sampleProfile())

	s.UpdateProfile(models.ProfileUpdate{Bio: ptr("x")})

	want := sampleProfile()
	want.Bio = "x"
	if diff := cmp.Diff(want, s.Profile()); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldSetters(t *testing.T) {
	s := NewProfileStore()

	s.SetFullName("ignored")
	require.Nil(t, s.Profile(), "setters are no-ops without a profile")

	s.SetProfile(sampleProfile())
	s.SetEmail("c@d.com")
	s.SetFullName("Grace Hopper")
	s.SetGender("female")
	s.SetDateOfBirth("1906-12-09")
	s.SetProfilePicture("https://img/p.png")
	s.SetInterests([]string{"cobol"})
	s.SetSkills([]string{"compilers"})
	s.SetBio("admiral")
	s.SetSkillLevel(models.SkillLevelAdvanced)
	s.SetLearningGoal("debug")
	s.SetSupportStyle("mentor")
	s.SetOnboardingCompleted(true)

	want := &models.UserProfile{
		UserID:              "u1",
		Email:               "c@d.com",
		FullName:            "Grace Hopper",
		Gender:              "female",
		DateOfBirth:         "1906-12-09",
		ProfilePictureURL:   "https://img/p.png",
		Interests:           []string{"cobol"},
		Skills:              []string{"compilers"},
		Bio:                 "admiral",
		SkillLevel:          models.SkillLevelAdvanced,
		LearningGoal:        "debug",
		SupportStyle:        "mentor",
		OnboardingCompleted: true,
	}
	if diff := cmp.Diff(want, s.Profile()); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfile_ReturnsCopies(t *testing.T) {
	s := NewProfileStore()
	in := sampleProfile()
	s.SetProfile(in)

	in.Interests[0] = "mutated"
	got := s.Profile()
	got.Skills[0] = "mutated"

	again := s.Profile()
	assert.Equal(t, "go", again.Interests[0])
	assert.Equal(t, "math", again.Skills[0])
}

func TestClearProfile(t *testing.T) {
	s := NewProfileStore()
	s.SetProfile(sampleProfile())
	s.ClearProfile()
	assert.Nil(t, s.Profile())
}

func TestSubscribe(t *testing.T) {
	s := NewProfileStore()

	var seen []string
	cancel := s.Subscribe(func(p *models.UserProfile) {
		if p == nil {
			seen = append(seen, "<nil>")
			return
		}
		seen = append(seen, p.Bio)
	})

	s.SetProfile(sampleProfile())
	s.SetBio("new")
	s.ClearProfile()
	cancel()
	s.SetProfile(sampleProfile())

	assert.Equal(t, []string{"old", "new", "<nil>"}, seen)
}

func TestProfileStore_ConcurrentAccess(t *testing.T) {
	s := NewProfileStore()
	s.SetProfile(sampleProfile())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetBio("x")
		}()
		go func() {
			defer wg.Done()
			_ = s.Profile()
		}()
	}
	wg.Wait()
	assert.Equal(t, "x", s.Profile().Bio)
}

func TestSubscribe_DropsStaleSnapshots(t *testing.T) {
	s := NewProfileStore()

	var seen []string
	s.Subscribe(func(p *models.UserProfile) { seen = append(seen, p.Bio) })

	newer := sampleProfile()
	newer.Bio = "newer"
	older := sampleProfile()
	older.Bio = "older"

	// Deliveries racing outside the store lock can arrive out of order.
	s.notify(2, newer)
	s.notify(1, older)

	assert.Equal(t, []string{"newer"}, seen)
}

func TestSubscribe_LastDeliveryMatchesProfile(t *testing.T) {
	s := NewProfileStore()
	s.SetProfile(sampleProfile())

	var (
		mu   sync.Mutex
		last string
	)
	s.Subscribe(func(p *models.UserProfile) {
		mu.Lock()
		defer mu.Unlock()
		last = p.Bio
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetBio(fmt.Sprintf("bio-%d", i))
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, s.Profile().Bio, last)
}

func TestSubscribe_MutationFromCallback(t *testing.T) {
	s := NewProfileStore()
	s.SetProfile(sampleProfile())

	var seen []string
	s.Subscribe(func(p *models.UserProfile) {
		seen = append(seen, p.Bio)
		if p.Bio == "first" {
			s.SetBio("second")
		}
	})

	s.SetBio("first")

	assert.Equal(t, []string{"first", "second"}, seen)
	assert.Equal(t, "second", s.Profile().Bio)
}
