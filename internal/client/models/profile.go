package models

type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
)

// ParseSkillLevel reports whether s names a known skill level.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch l := SkillLevel(s); l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced:
		return l, true
	default:
		return "", false
	}
}

// UserProfile mirrors the backend's /user/me representation.
type UserProfile struct {
	UserID              string     `json:"user_id"`
	Email               string     `json:"email"`
	FullName            string     `json:"full_name"`
	Gender              string     `json:"gender"`
	DateOfBirth         string     `json:"date_of_birth"`
	ProfilePictureURL   string     `json:"profile_picture_url"`
	Interests           []string   `json:"interests"`
	Skills              []string   `json:"skills"`
	Bio                 string     `json:"bio"`
	SkillLevel          SkillLevel `json:"skill_level"`
	LearningGoal        string     `json:"learning_goal"`
	SupportStyle        string     `json:"support_style"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           string     `json:"created_at"`
	UpdatedAt           string     `json:"updated_at"`
}

// Clone returns a deep copy; slices are not shared with p.
func (p UserProfile) Clone() UserProfile {
	c := p
	c.Interests = append([]string(nil), p.Interests...)
	c.Skills = append([]string(nil), p.Skills...)
	return c
}

// ProfileUpdate is a partial profile. Nil fields are left unchanged, both on
// the wire (PUT /user/me) and when merged into local state.
type ProfileUpdate struct {
	Email             *string     `json:"email,omitempty" validate:"omitempty,email"`
	FullName          *string     `json:"full_name,omitempty"`
	Gender            *string     `json:"gender,omitempty"`
	DateOfBirth       *string     `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProfilePictureURL *string     `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	Interests         []string    `json:"interests,omitempty"`
	Skills            []string    `json:"skills,omitempty"`
	Bio               *string     `json:"bio,omitempty"`
	SkillLevel        *SkillLevel `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	LearningGoal      *string     `json:"learning_goal,omitempty"`
	SupportStyle      *string     `json:"support_style,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (u ProfileUpdate) Empty() bool {
	return u.Email == nil && u.FullName == nil && u.Gender == nil && u.DateOfBirth == nil &&
		u.ProfilePictureURL == nil && u.Interests == nil && u.Skills == nil && u.Bio == nil &&
		u.SkillLevel == nil && u.LearningGoal == nil && u.SupportStyle == nil
}

// Apply returns p with the non-nil fields of u copied over it.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	out := p.Clone()
	if u.Email != nil {
		out.Email = *u.Email
	}
	if u.FullName != nil {
		out.FullName = *u.FullName
	}
	if u.Gender != nil {
		out.Gender = *u.Gender
	}
	if u.DateOfBirth != nil {
		out.DateOfBirth = *u.DateOfBirth
	}
	if u.ProfilePictureURL != nil {
		out.ProfilePictureURL = *u.ProfilePictureURL
	}
	if u.Interests != nil {
		out.Interests = append([]string(nil), u.Interests...)
	}
	if u.Skills != nil {
		out.Skills = append([]string(nil), u.Skills...)
	}
	if u.Bio != nil {
		out.Bio = *u.Bio
	}
	if u.SkillLevel != nil {
		out.SkillLevel = *u.SkillLevel
	}
	if u.LearningGoal != nil {
		out.LearningGoal = *u.LearningGoal
	}
	if u.SupportStyle != nil {
		out.SupportStyle = *u.SupportStyle
	}
	return out
}

// OnboardingPayload is the body of POST /user/complete-onboarding.
type OnboardingPayload struct {
	Interests    []string   `json:"interests" validate:"min=1,dive,required"`
	SkillLevel   SkillLevel `json:"skill_level" validate:"required,oneof=beginner intermediate advanced"`
	LearningGoal string     `json:"learning_goal" validate:"required"`
	SupportStyle string     `json:"support_style" validate:"required"`
}
