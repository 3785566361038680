// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for the minnet toolkit.
//
// Optimizers update parameters in place, one (parameter, gradient) pair at a
// time. State such as momentum or Adam moments is kept per parameter, so one
// optimizer can drive every layer of a network.
//
// Example:
//
//	optimizer := optim.NewAdam[float64](optim.AdamConfig{LR: 0.001})
//	for _, layer := range layers {
//	    if err := layer.UpdateParameters(optimizer); err != nil {
//	        return err
//	    }
//	}
package optim
