package table_repo

import (
	"context"
	"mines_backend/internal/engine/mines"
	"mines_backend/internal/repository"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// table Стол одной сессии. mtx сериализует операции игрока
type table struct {
	mtx     sync.Mutex
	session *mines.Session
	closed  bool // стол удален, держатели старой ссылки получают ErrNotFound
}

type entry struct {
	table     *table
	expiresAt time.Time
}

// Repo Хранилище игровых столов в памяти. Баланс не переживает перезапуск сервера.
// Стол живет не дольше сессии входа, которой он открыт
type Repo struct {
	mtx             sync.RWMutex
	tables          map[string]entry
	startingBalance decimal.Decimal
	now             func() time.Time
}

// NewTableRepository Конструктор, новые столы получают startingBalance
func NewTableRepository(startingBalance decimal.Decimal) *Repo {
	return &Repo{
		tables:          make(map[string]entry),
		startingBalance: startingBalance,
		now:             time.Now,
	}
}

// Open Открывает стол сессии до expiresAt. Существующий стол сохраняет баланс и раунд, обновляется только срок
func (r *Repo) Open(_ context.Context, sessionID string, expiresAt time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.tables[sessionID]
	if !ok {
		e.table = &table{session: mines.NewSession(r.startingBalance)}
	}
	e.expiresAt = expiresAt
	r.tables[sessionID] = e
}

// Do Выполняет fn под блокировкой стола сессии.
// Для неизвестной, закрытой или истекшей сессии возвращает repository.ErrNotFound
func (r *Repo) Do(ctx context.Context, sessionID string, fn func(s *mines.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.RLock()
	e, ok := r.tables[sessionID]
	r.mtx.RUnlock()
	if !ok {
		return repository.ErrNotFound
	}
	if !r.now().Before(e.expiresAt) {
		r.Delete(ctx, sessionID)
		return repository.ErrNotFound
	}

	e.table.mtx.Lock()
	defer e.table.mtx.Unlock()
	if e.table.closed {
		return repository.ErrNotFound
	}

	return fn(e.table.session)
}

// Delete Убирает стол сессии
func (r *Repo) Delete(_ context.Context, sessionID string) {
	r.mtx.Lock()
	e, ok := r.tables[sessionID]
	delete(r.tables, sessionID)
	r.mtx.Unlock()

	if ok {
		e.table.mtx.Lock()
		e.table.closed = true
		e.table.mtx.Unlock()
	}
}

// DeleteExpired Убирает столы истекших сессий, возвращает количество удаленных
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) int {
	r.mtx.RLock()
	var expired []string
	for id, e := range r.tables {
		if !now.Before(e.expiresAt) {
			expired = append(expired, id)
		}
	}
	r.mtx.RUnlock()

	for _, id := range expired {
		r.Delete(ctx, id)
	}
	return len(expired)
}

// Len Количество открытых столов
func (r *Repo) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.tables)
}
