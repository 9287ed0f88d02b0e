package catalog

// State is the loaded catalog. It is built once by the loader and only read
// afterwards; callers pass it by pointer to the builders and renderers.
//
// The slices preserve manifest order, which drives column and row order in
// every rendered view.
type State struct {
	IDEs       []*DeveloperInterface `json:"ides"`
	Clients    []*AIClient           `json:"ai_clients"`
	Features   []*Feature            `json:"features"`
	Transports []*Feature            `json:"transports"`
	Changelog  []ChangelogEntry      `json:"changelog"`

	ides       map[string]*DeveloperInterface
	clients    map[string]*AIClient
	features   map[string]*Feature
	transports map[string]*Feature
}

// NewState indexes the given collections. Nil entries are skipped; when an
// ID repeats within a collection, the first occurrence wins. Features and
// transports are indexed apart, so one of each may share an ID.
func NewState(ides []*DeveloperInterface, clients []*AIClient, features, transports []*Feature, changelog []ChangelogEntry) *State {
	s := &State{
		ides:       make(map[string]*DeveloperInterface, len(ides)),
		clients:    make(map[string]*AIClient, len(clients)),
		features:   make(map[string]*Feature, len(features)),
		transports: make(map[string]*Feature, len(transports)),
	}

	for _, d := range ides {
		if d == nil {
			continue
		}
		if _, dup := s.ides[d.ID]; dup {
			continue
		}
		s.ides[d.ID] = d
		s.IDEs = append(s.IDEs, d)
	}
	for _, c := range clients {
		if c == nil {
			continue
		}
		if _, dup := s.clients[c.ID]; dup {
			continue
		}
		s.clients[c.ID] = c
		s.Clients = append(s.Clients, c)
	}
	s.Features = indexFeatures(s.features, features)
	s.Transports = indexFeatures(s.transports, transports)
	s.Changelog = append([]ChangelogEntry(nil), changelog...)

	return s
}

func indexFeatures(index map[string]*Feature, list []*Feature) []*Feature {
	var out []*Feature
	for _, f := range list {
		if f == nil {
			continue
		}
		if _, dup := index[f.ID]; dup {
			continue
		}
		index[f.ID] = f
		out = append(out, f)
	}
	return out
}

// IDE looks up a developer interface by ID.
func (s *State) IDE(id string) *DeveloperInterface {
	if s == nil {
		return nil
	}
	return s.ides[id]
}

// Client looks up an AI client by ID.
func (s *State) Client(id string) *AIClient {
	if s == nil {
		return nil
	}
	return s.clients[id]
}

// Feature looks up a feature by ID, falling back to the transports when no
// feature has it.
func (s *State) Feature(id string) *Feature {
	if s == nil {
		return nil
	}
	if f, ok := s.features[id]; ok {
		return f
	}
	return s.transports[id]
}

// Lookup finds a feature or a transport by kind and ID.
func (s *State) Lookup(kind Kind, id string) *Feature {
	if s == nil {
		return nil
	}
	switch kind {
	case KindFeature:
		return s.features[id]
	case KindTransport:
		return s.transports[id]
	}
	return nil
}

// KindOf reports which collection f was indexed in. Features the state
// does not hold count as KindFeature.
func (s *State) KindOf(f *Feature) Kind {
	if s != nil && f != nil && s.transports[f.ID] == f && s.features[f.ID] != f {
		return KindTransport
	}
	return KindFeature
}

// Collection returns the features or the transports in manifest order.
func (s *State) Collection(kind Kind) []*Feature {
	if s == nil {
		return nil
	}
	if kind == KindTransport {
		return s.Transports
	}
	return s.Features
}

// SharedIDs lists the IDs used by both a feature and a transport, in
// feature order.
func (s *State) SharedIDs() []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, f := range s.Features {
		if _, ok := s.transports[f.ID]; ok {
			out = append(out, f.ID)
		}
	}
	return out
}

// Empty reports whether nothing at all was loaded.
func (s *State) Empty() bool {
	return s == nil || len(s.IDEs) == 0 && len(s.Clients) == 0 &&
		len(s.Features) == 0 && len(s.Transports) == 0 && len(s.Changelog) == 0
}
