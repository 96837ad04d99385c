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

package compose

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/podcompose/podcompose/pkg/api"
)

// BuildImages (re)builds every declared BuildSpec, bounded by the same
// maxConcurrentPulls limit as PullImages. BuildIfChanged is accepted but
// not distinguished from BuildAlways - see the BuildPolicy doc comment -
// so every declared build runs unconditionally here. pullPolicy is
// accepted but not used: it is not passed to the backend, and base images
// are never pulled or refreshed by this method. As with PullImages, a
// failing build doesn't stop its siblings; every failure is aggregated
// and returned together.
func (c *Controller) BuildImages(ctx context.Context, buildPolicy api.BuildPolicy, pullPolicy api.PullPolicy) error {
	eg := &errgroup.Group{}
	eg.SetLimit(maxConcurrentPulls)

	var mu sync.Mutex
	var errs *multierror.Error

	for _, spec := range c.composition.BuildImages {
		spec := spec
		eg.Go(func() error {
			if _, err := c.backend.BuildImage(ctx, spec); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("build %s: %w", spec.OutputName, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
	return errs.ErrorOrNil()
}
