package dbhelper

import (
	"sort"
	"sync"

	"github.com/armsplatform/apiv1/models"
)

// MemoryUserDirectory is a map-backed UserDirectory for tests and local
// development. IDs are assigned sequentially on first save.
type MemoryUserDirectory struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*models.User // keyed by email
}

func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{
		nextID: 1,
		users:  make(map[string]*models.User),
	}
}

func (d *MemoryUserDirectory) FindByEmail(email string) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (d *MemoryUserDirectory) ExistsByEmail(email string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.users[email]
	return ok, nil
}

func (d *MemoryUserDirectory) Save(user *models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if user.ID == 0 {
		user.ID = d.nextID
		d.nextID++
	}
	copied := *user
	d.users[user.Email] = &copied
	return nil
}

func (d *MemoryUserDirectory) IncrementUploadCount(id uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, user := range d.users {
		if user.ID == id {
			user.UploadCount++
			return nil
		}
	}
	return nil
}

func (d *MemoryUserDirectory) TopContributors(role models.Role, limit int) ([]models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var users []models.User
	for _, user := range d.users {
		if role == "" || user.Role == role {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].UploadCount > users[j].UploadCount
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}
