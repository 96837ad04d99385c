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

import "context"

// Writer reports lifecycle events as the controller applies a plan.
// Terminal progress rendering (a live multi-line TTY display, a JSON
// stream) is out of scope here, so Writer has exactly one real
// implementation, plainWriter, plus a quiet no-op returned by
// ContextWriter when no Writer is attached.
type Writer interface {
	Event(Event)
	Events([]Event)
	TailMsgf(string, ...interface{})
}

type writerKey struct{}

// WithContextWriter attaches w to ctx for ContextWriter to retrieve.
func WithContextWriter(ctx context.Context, w Writer) context.Context {
	return context.WithValue(ctx, writerKey{}, w)
}

// ContextWriter returns the Writer attached to ctx, or a no-op Writer if
// none was attached.
func ContextWriter(ctx context.Context) Writer {
	w, ok := ctx.Value(writerKey{}).(Writer)
	if !ok {
		return quietWriter{}
	}
	return w
}
