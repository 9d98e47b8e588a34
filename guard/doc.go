// Package guard shares one core.Graph between goroutines.
//
// core.Graph is single-writer and lock-free; its read paths are safe for
// concurrent use only while no mutation runs. guard.Graph adds the
// read-write lock:
//
//	s, _ := guard.New(core.NewGraph())
//	_ = s.Update(func(g *core.Graph) error { _, err := g.AddNode(); return err })
//	_ = s.View(func(g *core.Graph) error { fmt.Println(g.NodeCount()); return nil })
package guard
