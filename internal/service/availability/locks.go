package availability

import "sync"

// recordLocks сериализует записи в запись доступности одного бизнеса:
// одновременно допустима только одна полная запись, второй конкурентный
// запрос отклоняется (а не встает в очередь).
type recordLocks struct {
	mu    sync.Mutex
	inUse map[int64]struct{}
}

func newRecordLocks() *recordLocks {
	return &recordLocks{inUse: make(map[int64]struct{})}
}

// tryAcquire пытается захватить запись бизнеса.
// Возвращает false, если запись уже обновляется.
func (l *recordLocks) tryAcquire(businessID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.inUse[businessID]; busy {
		return false
	}
	l.inUse[businessID] = struct{}{}
	return true
}

// release освобождает запись бизнеса
func (l *recordLocks) release(businessID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inUse, businessID)
}
