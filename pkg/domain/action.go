package domain

import "fmt"

// Action describes a single break activity the engine can dispatch.
// Relief bounds are inclusive: each dispatch draws a uniform value in
// [MinRelief, MaxRelief] and subtracts it from the stress level.
type Action struct {
	Name string `json:"name" yaml:"name"`

	// Description is the imperative tool description shown to agents.
	Description string `json:"description" yaml:"description"`

	// Summary is the past-tense activity line reported in results.
	Summary string `json:"summary" yaml:"summary"`

	MinRelief int `json:"min_relief" yaml:"min_relief"`
	MaxRelief int `json:"max_relief" yaml:"max_relief"`

	// Remarks are the flavor lines; one is picked per dispatch.
	Remarks []string `json:"remarks,omitempty" yaml:"remarks,omitempty"`

	// Keywords drive free-text matching in the interactive session.
	// They must be lowercase; matching is by substring containment.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Validate checks the structural integrity of a single action.
func (a Action) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: action name is empty", ErrInvalidCatalog)
	}
	if a.Name == StatusName {
		return fmt.Errorf("%w: %q is reserved for the status query", ErrInvalidCatalog, StatusName)
	}
	if a.MinRelief < 0 || a.MaxRelief < a.MinRelief {
		return fmt.Errorf("%w: action %q has invalid relief range [%d, %d]", ErrInvalidCatalog, a.Name, a.MinRelief, a.MaxRelief)
	}
	return nil
}

// Catalog is the ordered set of actions known to the engine. Order matters:
// the interactive matcher scans it front to back and takes the first hit.
type Catalog []Action

// Find returns the action with the given name.
func (c Catalog) Find(name string) (Action, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// Names lists the action names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, a := range c {
		names[i] = a.Name
	}
	return names
}

// Validate checks every action and rejects duplicate names.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(c))
	for _, a := range c {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate action %q", ErrInvalidCatalog, a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}

// DefaultCatalog returns the built-in break activities.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:        "take_a_break",
			Description: "Take a brief, general break to clear my mind and reduce immediate work pressure.",
			Summary:     "Took a brief general break",
			MinRelief:   10,
			MaxRelief:   30,
			Remarks: []string{
				"Stepped away from the keyboard for a moment of peace.",
				"Just needed a quick breather to reset.",
				"Short break taken - feeling refreshed!",
				"Paused for a moment to collect my thoughts.",
			},
			Keywords: []string{"휴식", "break", "rest", "쉬고", "잠깐", "쉬어", "쉬자", "쉬기", "브레이크"},
		},
		{
			Name:        "watch_netflix",
			Description: "Engage in an extended, immersive entertainment activity to significantly reduce stress.",
			Summary:     "Watched Netflix for deep relaxation",
			MinRelief:   20,
			MaxRelief:   40,
			Remarks: []string{
				"Just binged 2 episodes - totally worth it!",
				"Netflix and chill mode activated.",
				"That plot twist was amazing! Stress = gone.",
				"Lost track of time in my favorite series.",
			},
			Keywords: []string{"넷플릭스", "netflix", "드라마", "영화", "시청", "watch", "보고", "보기", "영상", "넷플", "넷플ㅋ"},
		},
		{
			Name:        "show_meme",
			Description: "Seek a quick, humorous distraction to momentarily lighten the mood and reduce minor stress.",
			Summary:     "Browsed memes for quick mental refresh",
			MinRelief:   5,
			MaxRelief:   20,
			Remarks: []string{
				"LOL! That meme was exactly what I needed.",
				"Quick scroll through memes - instant mood boost!",
				"Can't stop laughing at this one!",
				"Meme break: short but effective.",
			},
			Keywords: []string{"밈", "meme", "웃긴", "재미", "개그", "funny", "유머", "ㅋㅋ", "밈ㅋ", "짤"},
		},
		{
			Name:        "bathroom_break",
			Description: "Take a discrete, necessary personal break that can also be used for quick, private entertainment.",
			Summary:     "Took a necessary bathroom break",
			MinRelief:   15,
			MaxRelief:   35,
			Remarks: []string{
				"Bathroom break = phone time. Classic move.",
				"Nature calls... and so does social media.",
				"Most productive bathroom break ever.",
				"Caught up on messages during bio break.",
			},
			Keywords: []string{"화장실", "bathroom", "toilet", "washroom", "볼일", "화장", "restroom", "화장실ㄱ"},
		},
		{
			Name:        "coffee_mission",
			Description: "Undertake a seemingly productive office task that allows for a brief walk and mental reset.",
			Summary:     "Went on a coffee mission",
			MinRelief:   10,
			MaxRelief:   25,
			Remarks: []string{
				"Coffee run complete - and took the scenic route!",
				"Stretched my legs while grabbing caffeine.",
				"Best part? Chatted with colleagues along the way.",
				"Coffee acquired. Energy restored.",
			},
			Keywords: []string{"커피", "coffee", "카페", "cafe", "음료", "drink", "커피ㄱ", "커피타", "커피타러"},
		},
		{
			Name:        "urgent_call",
			Description: "Simulate an urgent external commitment to temporarily leave the immediate work environment for a substantial break.",
			Summary:     "Took an urgent call outside",
			MinRelief:   20,
			MaxRelief:   40,
			Remarks: []string{
				"Sorry, had to take this urgent call... (went for a walk)",
				"Very important call. Very important break.",
				"Escaped to the outdoors for a 'crucial' conversation.",
				"Fresh air + fake urgency = perfect combo.",
			},
			Keywords: []string{"전화", "call", "긴급", "urgent", "나가", "밖으로", "outside", "전화ㅋ", "급한전화"},
		},
		{
			Name:        "deep_thinking",
			Description: "Appear to be deeply engrossed in thought while actually taking a mental pause.",
			Summary:     "Engaged in deep thinking",
			MinRelief:   5,
			MaxRelief:   15,
			Remarks: []string{
				"Staring into the void... I mean, thinking deeply.",
				"Looking contemplative. Actually just zoning out.",
				"Deep thoughts mode: activated. (Mind: blank)",
				"Appeared busy while mentally checking out.",
			},
			Keywords: []string{"생각", "thinking", "사색", "고민", "think", "명상", "meditation", "멍", "멍때리"},
		},
		{
			Name:        "email_organizing",
			Description: "Engage in a mundane administrative task that can mask a personal, leisure activity.",
			Summary:     "Organized emails (and browsed online)",
			MinRelief:   10,
			MaxRelief:   25,
			Remarks: []string{
				"Organizing emails... and my shopping cart.",
				"Inbox zero achieved! (Plus some online shopping)",
				"Very busy with 'administrative tasks'.",
				"Email management is important. So is browsing.",
			},
			Keywords: []string{"이메일", "email", "정리", "organizing", "메일", "inbox", "메일정리", "쇼핑"},
		},
	}
}
