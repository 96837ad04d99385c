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

// Package progress renders the events a plan application emits as it
// runs. Only a plain-text renderer is provided; fancy terminal rendering
// is out of scope.
package progress

const (
	// ModePlain dumps one line of text per event.
	ModePlain = "plain"
	// ModeQuiet discards every event.
	ModeQuiet = "quiet"
)
