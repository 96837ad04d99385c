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

package api

import "errors"

// Planning errors are programmer/operator errors raised by the controller
// itself, never by the backend. They are always fatal to the current Apply
// call; there is no retry.
var (
	// ErrUnknownContainer is returned by Apply when the named container has
	// no matching ContainerSpec in the composition.
	ErrUnknownContainer = errors.New("unknown container name")
	// ErrContainerNotObserved is returned by Apply when the named container
	// is not present in the controller's observation snapshot.
	ErrContainerNotObserved = errors.New("could not find container")
)
