package store

import (
	"fmt"
	"strings"

	"chat-sim/internal/models"
)

// UserRegistry maps user id to profile. Exactly one user carries the
// IsCurrentUser flag for the whole session.
type UserRegistry struct {
	users map[string]models.User
	order []string
}

// NewUserRegistry creates an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[string]models.User)}
}

// Load hydrates a user at session bootstrap.
func (r *UserRegistry) Load(user models.User) {
	if _, ok := r.users[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	r.users[user.ID] = user
}

// Get returns a user profile.
func (r *UserRegistry) Get(id string) (models.User, bool) {
	user, ok := r.users[id]
	return user, ok
}

// Current returns the user flagged as the local viewer.
func (r *UserRegistry) Current() (models.User, bool) {
	for _, id := range r.order {
		if r.users[id].IsCurrentUser {
			return r.users[id], true
		}
	}
	return models.User{}, false
}

// List returns all users in registration order.
func (r *UserRegistry) List() []models.User {
	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users
}

// AddContact creates a user from an invitation contact. The display name
// is derived from the email local part, or from the phone number when no
// email is given.
func (r *UserRegistry) AddContact(id, email, phone string) (models.User, bool) {
	name := ""
	switch {
	case email != "":
		name = strings.SplitN(email, "@", 2)[0]
	case len(phone) >= 4:
		name = fmt.Sprintf("User (%s)", phone[len(phone)-4:])
	default:
		return models.User{}, false
	}

	user := models.User{
		ID:     id,
		Name:   name,
		Email:  email,
		Phone:  phone,
		Avatar: "/placeholder.svg?height=40&width=40",
	}
	r.Load(user)
	return user, true
}

// Update applies a partial profile edit.
func (r *UserRegistry) Update(id string, update models.ProfileUpdate) bool {
	user, ok := r.users[id]
	if !ok {
		return false
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	r.users[id] = user
	return true
}

// Remove deletes the user from the registry.
func (r *UserRegistry) Remove(id string) bool {
	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}
