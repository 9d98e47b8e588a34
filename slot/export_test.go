// SPDX-License-Identifier: MIT

package slot

// SetGeneration overwrites the generation of slot i.
func SetGeneration[T any](a *Arena[T], i int, gen uint32) { a.meta[i].gen = gen }
