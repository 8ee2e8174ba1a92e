//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"hotel-admin/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const sessionPrefix = "session:"

type ISessionRepository interface {
	Save(session Session) error
	Get(email string) (Session, error)
	List() ([]Session, error)
	Delete(email string) error
}

type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) ISessionRepository {
	return &SessionRepository{db: db, log: log}
}

// Session is the admin session kept between CLI invocations.
type Session struct {
	ID        uuid.UUID
	Email     string
	Token     string
	CreatedAt time.Time
}

func NewSession(email, token string) Session {
	return Session{
		ID:        uuid.New(),
		Email:     email,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}
}

// Save stores the session under "session:{email}", replacing any previous one.
func (r SessionRepository) Save(session Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(session.Email), data)
	})
}

func (r SessionRepository) Get(email string) (Session, error) {
	var session Session
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(email))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			session, err = decodeSession(val)
			return err
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return Session{}, errors.ErrSessionNotFound
	}
	return session, err
}

// List returns every stored session, ordered by email.
func (r SessionRepository) List() ([]Session, error) {
	var sessions []Session
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				session, err := decodeSession(val)
				if err != nil {
					r.log.Warn("Skipping unreadable session", "key", string(item.Key()), "error", err)
					return nil
				}
				sessions = append(sessions, session)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sessions, err
}

func (r SessionRepository) Delete(email string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(email))
	})
}

func sessionKey(email string) []byte {
	return []byte(sessionPrefix + email)
}

func encodeSession(s Session) ([]byte, error) {
	st, err := structpb.NewStruct(map[string]any{
		"id":         s.ID.String(),
		"email":      s.Email,
		"token":      s.Token,
		"created_at": s.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(st)
}

func decodeSession(data []byte) (Session, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return Session{}, err
	}
	fields := st.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:        id,
		Email:     fields["email"].GetStringValue(),
		Token:     fields["token"].GetStringValue(),
		CreatedAt: time.Unix(int64(fields["created_at"].GetNumberValue()), 0).UTC(),
	}, nil
}
