// file: internals/features/recycling/exchanges/service/locks.go
package service

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// StudentLocks: mutual exclusion per siswa. Semua mutasi agregat siswa
// (setor, edit, hapus, rekalkulasi, penjualan) harus lewat lock ini supaya
// urutan read-modify-write tidak saling menyela. Operasi antar siswa berbeda
// tetap jalan paralel.
type StudentLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewStudentLocks() *StudentLocks {
	return &StudentLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock mengunci satu siswa; pemanggil wajib defer fungsi unlock yang dikembalikan.
func (l *StudentLocks) Lock(studentID uuid.UUID) func() {
	m := l.get(studentID)
	m.Lock()
	return m.Unlock
}

// LockPair mengunci dua siswa dengan urutan deterministik (string UUID)
// supaya edit lintas siswa tidak bisa deadlock.
func (l *StudentLocks) LockPair(a, b uuid.UUID) func() {
	if a == b {
		return l.Lock(a)
	}
	first, second := a, b
	if strings.Compare(a.String(), b.String()) > 0 {
		first, second = b, a
	}
	unlockFirst := l.Lock(first)
	unlockSecond := l.Lock(second)
	return func() {
		unlockSecond()
		unlockFirst()
	}
}

func (l *StudentLocks) get(studentID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[studentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[studentID] = m
	}
	return m
}
