/*
   Copyright 2020 Docker Compose CLI authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package progress

import (
	"fmt"
	"io"
	"sync"
)

// plainWriter renders one line per event: "NAME StatusText". A mutex
// serializes writes, so it is safe for concurrent use.
type plainWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns the plain-text Writer used throughout podcompose.
func NewWriter(out io.Writer) Writer {
	return &plainWriter{out: out}
}

func (p *plainWriter) Event(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, e.ID, e.StatusText)
}

func (p *plainWriter) Events(events []Event) {
	for _, e := range events {
		p.Event(e)
	}
}

func (p *plainWriter) TailMsgf(msg string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, msg+"\n", args...)
}

// quietWriter discards every event. It is what ContextWriter returns when
// no Writer has been attached; --quiet instead uses a plainWriter over
// io.Discard.
type quietWriter struct{}

func (quietWriter) Event(Event)                     {}
func (quietWriter) Events([]Event)                  {}
func (quietWriter) TailMsgf(string, ...interface{}) {}
