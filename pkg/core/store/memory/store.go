// Package memory keeps users and posts in process memory. It backs the
// "memory" database driver for local runs and the handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	apperrors "mini-blog/pkg/common/errors"
	postmodel "mini-blog/pkg/core/post/model"
	postdao "mini-blog/pkg/core/post/repository/dao"
	usermodel "mini-blog/pkg/core/user/model"
	userdao "mini-blog/pkg/core/user/repository/dao"
)

var (
	_ userdao.UserRepository = (*Store)(nil)
	_ postdao.PostRepository = (*Store)(nil)
)

// Store implements both repositories over maps. Insertion order is kept so
// list results are stable, the way a table scan by primary key would be.
type Store struct {
	mu        sync.RWMutex
	users     map[string]usermodel.User
	userOrder []string
	posts     map[string]postmodel.Post
	postOrder []string
}

func New() *Store {
	return &Store{
		users: make(map[string]usermodel.User),
		posts: make(map[string]postmodel.Post),
	}
}

// PingContext always succeeds.
func (s *Store) PingContext(context.Context) error { return nil }

func (s *Store) FindUserByEmail(_ context.Context, email string) (usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Email == email {
			return u, nil
		}
	}
	return usermodel.User{}, apperrors.ErrUserNotFound
}

func (s *Store) FindUserByID(_ context.Context, id string) (usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return usermodel.User{}, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *Store) CreateUser(_ context.Context, user *usermodel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrDuplicateEntry
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if _, ok := s.users[user.ID]; ok {
		return apperrors.ErrDuplicateEntry
	}
	stored := *user
	stored.Posts = nil
	s.users[user.ID] = stored
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *Store) ListUsersWithPosts(context.Context) ([]usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byUser := make(map[string][]postmodel.Post, len(s.users))
	for _, id := range s.postOrder {
		p := s.posts[id]
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}
	users := make([]usermodel.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		u := s.users[id]
		u.Posts = byUser[id]
		users = append(users, u)
	}
	return users, nil
}

func (s *Store) ListPosts(context.Context) ([]postmodel.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]postmodel.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		posts = append(posts, s.posts[id])
	}
	return posts, nil
}

func (s *Store) CreatePost(_ context.Context, post *postmodel.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// foreign key
	if _, ok := s.users[post.UserID]; !ok {
		return fmt.Errorf("%w: post references unknown user %q", apperrors.ErrDatabaseInternal, post.UserID)
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if _, ok := s.posts[post.ID]; ok {
		return apperrors.ErrDuplicateEntry
	}
	s.posts[post.ID] = *post
	s.postOrder = append(s.postOrder, post.ID)
	return nil
}

func (s *Store) FindPostByID(_ context.Context, id string) (postmodel.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return postmodel.Post{}, apperrors.ErrPostNotFound
	}
	return p, nil
}

// UpdatePost accepts the same column names the posts table has and rejects
// anything else, like the database would.
func (s *Store) UpdatePost(_ context.Context, id string, fields map[string]interface{}) (postmodel.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return postmodel.Post{}, apperrors.ErrPostNotFound
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := assign(&p, k, fields[k]); err != nil {
			return postmodel.Post{}, err
		}
	}
	if _, ok := s.users[p.UserID]; !ok {
		return postmodel.Post{}, fmt.Errorf("%w: post references unknown user %q", apperrors.ErrDatabaseInternal, p.UserID)
	}

	if p.ID != id {
		if _, taken := s.posts[p.ID]; taken {
			return postmodel.Post{}, apperrors.ErrDuplicateEntry
		}
		delete(s.posts, id)
		for i, pid := range s.postOrder {
			if pid == id {
				s.postOrder[i] = p.ID
				break
			}
		}
	}
	s.posts[p.ID] = p
	return p, nil
}

func (s *Store) DeletePost(_ context.Context, id string) (postmodel.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return postmodel.Post{}, apperrors.ErrPostNotFound
	}
	delete(s.posts, id)
	for i, pid := range s.postOrder {
		if pid == id {
			s.postOrder = append(s.postOrder[:i], s.postOrder[i+1:]...)
			break
		}
	}
	return p, nil
}

func assign(p *postmodel.Post, column string, value interface{}) error {
	switch column {
	case "id", "user_id", "title", "description":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: column %q expects a string, got %T", apperrors.ErrDatabaseInternal, column, value)
		}
		switch column {
		case "id":
			p.ID = str
		case "user_id":
			p.UserID = str
		case "title":
			p.Title = str
		case "description":
			p.Description = str
		}
	case "comment_count":
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%w: column %q: %v", apperrors.ErrDatabaseInternal, column, err)
		}
		p.CommentCount = n
	default:
		return fmt.Errorf("%w: unknown column %q", apperrors.ErrDatabaseInternal, column)
	}
	return nil
}

func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
