package repository

import "context"

// User is the account document owned by the users collection. Field names
// follow the stored document shape.
type User struct {
	UID       string `bson:"uid" json:"uid"`
	UserName  string `bson:"userName,omitempty" json:"userName,omitempty"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL  string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string `bson:"role,omitempty" json:"role,omitempty"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"`
	LastLogin string `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	SignupAt  string `bson:"signupDate,omitempty" json:"signupDate,omitempty"`
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByUID fetches a user by uid; absent users are reported as (nil, nil).
	FindByUID(ctx context.Context, uid string) (*User, error)

	// Insert stores a brand-new user document.
	Insert(ctx context.Context, u User) error

	// UpdateLogin upserts the lastLogin and status fields for a returning user.
	UpdateLogin(ctx context.Context, uid, lastLogin, status string) error

	// UpdateStatus upserts the status field for the given uid.
	UpdateStatus(ctx context.Context, uid, status string) error

	// List returns one page of users plus the total collection count.
	List(ctx context.Context, page, size int64) ([]User, int64, error)

	// Search returns users whose userName, email or phone contains term,
	// case-insensitively.
	Search(ctx context.Context, term string) ([]User, error)
}
