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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUnknownContainerWrapped(t *testing.T) {
	err := fmt.Errorf("apply web_0: %w", ErrUnknownContainer)
	assert.True(t, errors.Is(err, ErrUnknownContainer))
	assert.False(t, errors.Is(err, ErrContainerNotObserved))
}

func TestErrContainerNotObservedWrapped(t *testing.T) {
	err := fmt.Errorf("apply web_0: %w", ErrContainerNotObserved)
	assert.True(t, errors.Is(err, ErrContainerNotObserved))
}
