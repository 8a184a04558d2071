package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/devfolio/internal/config"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal    = "global"
	scopeExplorer  = "explorer"
	scopeEditor    = "editor"
	scopePanel     = "panel"
	scopeQuickOpen = "quick_open"
)

const (
	actionQuit         Action = "quit"
	actionToggleLeft   Action = "toggle_explorer"
	actionToggleBottom Action = "toggle_panel"
	actionToggleRight  Action = "toggle_copilot"
	actionQuickOpen    Action = "quick_open"
	actionCloseEditor  Action = "close_editor"
	actionNextEditor   Action = "next_editor"
	actionPrevEditor   Action = "prev_editor"
	actionNextFocus    Action = "next_focus"
	actionPrevFocus    Action = "prev_focus"
	actionNavigate     Action = "navigate"
	actionSelect       Action = "select"
	actionScroll       Action = "scroll"
	actionPage         Action = "page"
	actionJumpTop      Action = "jump_top"
	actionJumpBottom   Action = "jump_bottom"
	actionCopy         Action = "copy"
	actionNextPanelTab Action = "next_panel_tab"
	actionPrevPanelTab Action = "prev_panel_tab"
	actionPickPanelTab Action = "pick_panel_tab"
	actionClose        Action = "close"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuickOpen, []string{"ctrl+p"}, "go to file")
	reg(scopeGlobal, actionNextFocus, []string{"tab"}, "focus")
	reg(scopeGlobal, actionPrevFocus, []string{"shift+tab"}, "prev focus")
	reg(scopeGlobal, actionToggleLeft, []string{"ctrl+b"}, "explorer")
	reg(scopeGlobal, actionToggleBottom, []string{"ctrl+j"}, "panel")
	reg(scopeGlobal, actionToggleRight, []string{"ctrl+l"}, "copilot")
	reg(scopeGlobal, actionCloseEditor, []string{"ctrl+w"}, "close tab")
	reg(scopeGlobal, actionNextEditor, []string{"]"}, "next tab")
	reg(scopeGlobal, actionPrevEditor, []string{"["}, "prev tab")
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	// Explorer footer.
	reg(scopeExplorer, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopeExplorer, actionSelect, []string{"enter", "space", "l", "right"}, "open")
	reg(scopeExplorer, actionJumpTop, []string{"g", "home"}, "top")
	reg(scopeExplorer, actionJumpBottom, []string{"G", "end"}, "bottom")

	// Editor footer.
	reg(scopeEditor, actionScroll, []string{"j/k", "j", "k", "up", "down"}, "scroll")
	reg(scopeEditor, actionPage, []string{"pgup/pgdn", "pgup", "pgdown", "ctrl+u", "ctrl+d"}, "page")
	reg(scopeEditor, actionJumpTop, []string{"g", "home"}, "top")
	reg(scopeEditor, actionJumpBottom, []string{"G", "end"}, "bottom")
	reg(scopeEditor, actionCopy, []string{"y"}, "copy")

	// Bottom panel footer.
	reg(scopePanel, actionNextPanelTab, []string{"l", "right"}, "next")
	reg(scopePanel, actionPrevPanelTab, []string{"h", "left"}, "prev")
	reg(scopePanel, actionPickPanelTab, []string{"1-5", "1", "2", "3", "4", "5"}, "pick")

	// Quick open is a text field: no global fallback, letters are typed.
	reg(scopeQuickOpen, actionNavigate, []string{"up/down", "up", "down", "ctrl+p", "ctrl+n"}, "navigate")
	reg(scopeQuickOpen, actionSelect, []string{"enter"}, "open")
	reg(scopeQuickOpen, actionClose, []string{"esc", "ctrl+c"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves keyName in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if b := r.LookupLocal(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.LookupLocal(keyName, scopeGlobal)
	}
	return nil
}

// LookupLocal resolves keyName in scope only.
func (r *KeyRegistry) LookupLocal(keyName, scope string) *Binding {
	if r == nil || keyName == "" || scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[normalizeKeyName(keyName)]
}

func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// ApplyKeybindingConfig replaces the keys of configured actions. The whole
// set is validated: unknown scopes or actions, duplicate entries and key
// conflicts within a scope are errors.
func (r *KeyRegistry) ApplyKeybindingConfig(items []config.KeybindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

// ExportKeybindingConfig lists every binding, sorted by scope then action.
func (r *KeyRegistry) ExportKeybindingConfig() []config.KeybindingConfig {
	if r == nil {
		return nil
	}
	var out []config.KeybindingConfig
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, config.KeybindingConfig{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
