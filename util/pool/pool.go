package pool

import (
	"fmt"
	"scanbuf/buffer"
	"sync"
)

// Pool is a bounded pool of buffers. A buffer taken from the pool belongs to one goroutine
// until it is put back.
type Pool struct {
	size     int
	capacity int
	cache    chan *buffer.Buffer
	lock     sync.Mutex
	newFunc  func() (*buffer.Buffer, error)
}

func New(capacity int, newFunc func() (*buffer.Buffer, error)) *Pool {
	if capacity <= 0 {
		panic(fmt.Errorf("invalid argument for New Pool"))
	}
	p := new(Pool)
	p.capacity = capacity
	p.cache = make(chan *buffer.Buffer, capacity)
	p.newFunc = newFunc
	return p
}

// Get a buffer from Pool. Create a new buffer or wait for one if Pool has no buffer left
func (p *Pool) Get() (*buffer.Buffer, error) {
	if b := p.TryGet(); b != nil {
		return b, nil
	}
	created, b, err := p.createNew()
	if created {
		return b, err
	}
	return <-p.cache, nil
}

// TryGet pops one buffer from the pool channel. If channel is empty, function returns nil immediately
func (p *Pool) TryGet() *buffer.Buffer {
	select {
	case b := <-p.cache:
		return b
	default:
		return nil
	}
}

// Put clears b and returns it to the pool. A released buffer is replaced by a new one,
// or drops its slot if the replacement can not be allocated.
func (p *Pool) Put(b *buffer.Buffer) {
	if err := b.Clear(); err != nil {
		nb, err := p.newFunc()
		if err != nil {
			p.lock.Lock()
			p.size--
			p.lock.Unlock()
			return
		}
		b = nb
	}
	_ = b.ResetRelocated()
	p.cache <- b
}

func (p *Pool) Cap() int {
	return p.capacity
}

func (p *Pool) Size() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.size
}

// Close releases every idle buffer.
func (p *Pool) Close() {
	for {
		b := p.TryGet()
		if b == nil {
			return
		}
		_ = b.Free()
		p.lock.Lock()
		p.size--
		p.lock.Unlock()
	}
}

func (p *Pool) createNew() (bool, *buffer.Buffer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.size >= p.capacity {
		return false, nil, nil
	}
	b, err := p.newFunc()
	if err != nil {
		return true, nil, err
	}
	p.size++
	return true, b, nil
}
