package parser

const defaultQueueCapacity = 128

// TokenQueue is the FIFO sink emitted tokens are pushed into. It is a ring
// buffer that doubles when full, so pushes never overrun.
//
// A TokenQueue is owned by a single tokenizer and is not safe for concurrent use.
type TokenQueue struct {
	buf        []*Token
	head, size int
}

// NewTokenQueue creates an empty queue with room for capacity tokens before
// it has to grow.
func NewTokenQueue(capacity int) *TokenQueue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &TokenQueue{buf: make([]*Token, capacity)}
}

// Push appends a token to the tail of the queue.
func (q *TokenQueue) Push(t *Token) {
	if q.buf == nil {
		q.buf = make([]*Token, defaultQueueCapacity)
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = t
	q.size++
}

// Pop removes and returns the oldest token, or nil when the queue is empty.
func (q *TokenQueue) Pop() *Token {
	if q.size == 0 {
		return nil
	}
	t := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return t
}

// Peek returns the oldest token without removing it.
func (q *TokenQueue) Peek() *Token {
	if q.size == 0 {
		return nil
	}
	return q.buf[q.head]
}

// IsEmpty reports whether every token has been popped.
func (q *TokenQueue) IsEmpty() bool {
	return q.size == 0
}

// Len returns the number of queued tokens.
func (q *TokenQueue) Len() int {
	return q.size
}

// Drain pops every queued token, oldest first.
func (q *TokenQueue) Drain() []Token {
	out := make([]Token, 0, q.size)
	for !q.IsEmpty() {
		out = append(out, *q.Pop())
	}
	return out
}

// Close releases any tokens that were never popped. The queue is empty and
// reusable afterwards.
func (q *TokenQueue) Close() {
	for i := range q.buf {
		q.buf[i] = nil
	}
	q.head, q.size = 0, 0
}

func (q *TokenQueue) grow() {
	buf := make([]*Token, len(q.buf)*2)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
