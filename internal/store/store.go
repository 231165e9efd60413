package store

import (
	"errors"
	"sync"
	"time"

	"stockroom/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
)

type UserRepository interface {
	CreateUser(username, passwordHash, email string) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
}

type ItemRepository interface {
	CreateItem(ownerID int, name, description string, price float64) (*models.Item, error)
	ListItems() ([]models.Item, error)
	GetItem(id int) (*models.Item, error)
	UpdateItem(id int, update models.UpdateItemRequest) (*models.Item, error)
	DeleteItem(id int) error
}

// Store holds both collections in process memory. All state is volatile and
// lost on restart. A single mutex guards the slices and counters because gin
// dispatches handlers on concurrent goroutines.
type Store struct {
	mu            sync.Mutex
	users         []models.User
	items         []models.Item
	userIDCounter int
	itemIDCounter int
}

func New() *Store {
	return &Store{
		userIDCounter: 1,
		itemIDCounter: 1,
	}
}

func (s *Store) CreateUser(username, passwordHash, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return nil, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:           s.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		CreatedAt:    time.Now(),
	}
	s.userIDCounter++
	s.users = append(s.users, user)

	return &user, nil
}

func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			user := s.users[i]
			return &user, nil
		}
	}

	return nil, ErrNotFound
}

func (s *Store) CreateItem(ownerID int, name, description string, price float64) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.Item{
		ID:          s.itemIDCounter,
		Name:        name,
		Description: description,
		Price:       price,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}
	s.itemIDCounter++
	s.items = append(s.items, item)

	return &item, nil
}

func (s *Store) ListItems() ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, len(s.items))
	copy(items, s.items)

	return items, nil
}

func (s *Store) GetItem(id int) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}

	return nil, ErrNotFound
}

// UpdateItem overwrites exactly the fields present in the request. A price of
// 0 or an empty description is still an update; only nil fields keep their
// previous value.
func (s *Store) UpdateItem(id int, update models.UpdateItemRequest) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if update.Name != nil {
			s.items[i].Name = *update.Name
		}
		if update.Description != nil {
			s.items[i].Description = *update.Description
		}
		if update.Price != nil {
			s.items[i].Price = *update.Price
		}
		now := time.Now()
		s.items[i].UpdatedAt = &now

		item := s.items[i]
		return &item, nil
	}

	return nil, ErrNotFound
}

func (s *Store) DeleteItem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
