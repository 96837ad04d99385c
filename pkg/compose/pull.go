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
	"github.com/podcompose/podcompose/pkg/model"
)

// maxConcurrentPulls bounds the fan-out used by PullImages and BuildImages
// via errgroup.SetLimit. Image acquisition is the one place this
// controller departs from its otherwise single-threaded execution model:
// each image is independent, so there is no ordering guarantee to
// preserve.
const maxConcurrentPulls = 5

// PullImages acquires every image declared in the composition's
// PullImages list, according to policy. It does not mutate the
// Controller's observation snapshot. Unlike the applier's sequential
// operations, a failed pull doesn't cancel its siblings - each image is
// independent, so PullImages keeps pulling the rest and returns every
// failure it saw, aggregated with go-multierror.
func (c *Controller) PullImages(ctx context.Context, policy api.PullPolicy) error {
	eg := &errgroup.Group{}
	eg.SetLimit(maxConcurrentPulls)

	var mu sync.Mutex
	var errs *multierror.Error

	for _, name := range c.composition.PullImages {
		name := name
		eg.Go(func() error {
			if err := c.pullOne(ctx, name, policy); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
	return errs.ErrorOrNil()
}

func (c *Controller) pullOne(ctx context.Context, name model.ImageName, policy api.PullPolicy) error {
	if policy == api.PullIfNotPresent {
		existing, err := c.backend.GetImage(ctx, name)
		if err != nil {
			return fmt.Errorf("pull %s: %w", name, err)
		}
		if existing != nil {
			return nil
		}
	}
	if _, err := c.backend.PullImage(ctx, name); err != nil {
		return fmt.Errorf("pull %s: %w", name, err)
	}
	return nil
}
