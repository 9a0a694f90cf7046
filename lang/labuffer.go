package lang

import "devt.de/krotik/common/datautil"

/*
LABuffer is a look-ahead buffer sitting on top of a token channel, a
ring-buffer-backed shape that gives the parser one-token look-ahead
without blocking the lexer goroutine.
*/
type LABuffer struct {
	tokens chan Token
	buffer *datautil.RingBuffer
}

/*
NewLABuffer creates a new LABuffer fed from the given token channel.
*/
func NewLABuffer(c chan Token, size int) *LABuffer {
	if size < 1 {
		size = 1
	}

	ret := &LABuffer{c, datautil.NewRingBuffer(size)}

	v, more := <-ret.tokens
	ret.buffer.Add(v)

	for ret.buffer.Size() < size && more && v.Kind != TokenEOF {
		v, more = <-ret.tokens
		ret.buffer.Add(v)
	}

	return ret
}

/*
Next returns and consumes the next token.
*/
func (b *LABuffer) Next() (Token, bool) {
	ret := b.buffer.Poll()

	if v, more := <-b.tokens; more {
		b.buffer.Add(v)
	}

	if ret == nil {
		return Token{Kind: TokenEOF}, false
	}

	return ret.(Token), true
}

/*
Peek looks ahead into the buffer, 0 being the next unconsumed token.
*/
func (b *LABuffer) Peek(pos int) (Token, bool) {
	if pos >= b.buffer.Size() {
		return Token{Kind: TokenEOF}, false
	}
	return b.buffer.Get(pos).(Token), true
}
