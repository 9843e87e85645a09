package world

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// maxMessages bounds the log history.
const maxMessages = 200

// Message is one line of player-facing feedback.
type Message struct {
	Text  string
	Color tcell.Color
	Count int
}

// FullText returns the text with a repeat counter when the message stacked.
func (m Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// MessageLog keeps recent messages, oldest first.
type MessageLog struct {
	messages []Message
}

// Add appends a message. A message identical to the previous one bumps the
// previous message's counter instead.
func (l *MessageLog) Add(text string, fg tcell.Color) {
	if n := len(l.messages); n > 0 && l.messages[n-1].Text == text {
		l.messages[n-1].Count++
		return
	}
	l.messages = append(l.messages, Message{Text: text, Color: fg, Count: 1})
	if len(l.messages) > maxMessages {
		l.messages = l.messages[len(l.messages)-maxMessages:]
	}
}

// Messages returns the history, oldest first.
func (l *MessageLog) Messages() []Message {
	return l.messages
}

// Last returns the most recent message, or the zero Message.
func (l *MessageLog) Last() Message {
	if len(l.messages) == 0 {
		return Message{}
	}
	return l.messages[len(l.messages)-1]
}

// Len returns the number of stored (stacked) messages.
func (l *MessageLog) Len() int {
	return len(l.messages)
}
