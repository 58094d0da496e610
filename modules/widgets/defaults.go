package widgets

func DefaultFAQ() []FAQItem {
	return []FAQItem{
		{ID: "what", Question: "What is this page?", Answer: "A playground for events, interactive widgets and form validation."},
		{ID: "theme", Question: "Is my theme remembered?", Answer: "Yes, for as long as your session stays active."},
		{ID: "validation", Question: "Where is the form validated?", Answer: "On the server, every time you submit."},
	}
}

func DefaultDropdownOptions() []string {
	return []string{"Option 1", "Option 2", "Option 3"}
}

func DefaultTabs() []Tab {
	return []Tab{
		{ID: "tab1", Title: "Tab 1", Content: "Content for the first tab."},
		{ID: "tab2", Title: "Tab 2", Content: "Content for the second tab."},
		{ID: "tab3", Title: "Tab 3", Content: "Content for the third tab."},
	}
}
