package engine

// Scene owns the root-level list of GameObjects and a UID index covering
// every object added to it, children included.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject registers g for updates. Children of g are reached through
// g and must not be added separately.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	s.GameObjects = append(s.GameObjects, g)
	s.index(g)
}

func (s *Scene) index(g *GameObject) {
	g.Scene = s
	s.uidMap[g.UID] = g
	for _, child := range g.Children {
		s.index(child)
	}
}

func (s *Scene) unindex(g *GameObject) {
	delete(s.uidMap, g.UID)
	g.Scene = nil
	for _, child := range g.Children {
		s.unindex(child)
	}
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			s.unindex(g)
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

// FindByName searches the whole tree, depth first.
func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Walk(func(g *GameObject) bool {
		if g.Name == name {
			found = g
			return false
		}
		return true
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Walk(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

// Walk visits every GameObject depth first until fn returns false.
func (s *Scene) Walk(fn func(g *GameObject) bool) {
	for _, g := range s.GameObjects {
		if !walk(g, fn) {
			return
		}
	}
}

func walk(g *GameObject, fn func(g *GameObject) bool) bool {
	if !fn(g) {
		return false
	}
	for _, child := range g.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs components of active objects, parents before children.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		updateTree(g, deltaTime)
	}
}

func updateTree(g *GameObject, deltaTime float32) {
	if !g.Active {
		return
	}
	g.Update(deltaTime)
	for _, child := range g.Children {
		updateTree(child, deltaTime)
	}
}

// Draw calls every Drawable component of active objects.
func (s *Scene) Draw() {
	s.Walk(func(g *GameObject) bool {
		if !g.Active {
			return true
		}
		for _, c := range g.components {
			if d, ok := c.(Drawable); ok {
				d.Draw()
			}
		}
		return true
	})
}
