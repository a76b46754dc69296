package query

import (
	"strconv"
	"strings"

	"apigs/internal/models"
)

var (
	activeStates = map[string]any{"active": true, "inactive": false}
	boolStates   = map[string]any{"true": true, "false": false}
	publicStates = map[string]any{"public": true, "private": false}
)

// rank orders an enumerated column by its declared position rather than
// alphabetically. values are package constants, never caller input.
func rank(column string, values []string) string {
	var b strings.Builder
	b.WriteString("CASE " + column)
	for i, v := range values {
		b.WriteString(" WHEN '" + v + "' THEN " + strconv.Itoa(i+1))
	}
	b.WriteString(" END")
	return b.String()
}

// Projects lists portfolio projects; rows are joined with categories.
var Projects = &Entity{
	Name:   "project",
	Table:  "projects",
	Search: []string{"projects.title", "projects.description"},
	Filters: []Filter{
		{Param: "categoryId", Column: "projects.category_id", Kind: UUID},
		{Param: "category", Column: "categories.slug", Kind: Text},
		{Param: "status", Column: "projects.is_active", Kind: Mapped, Map: activeStates},
	},
	Sorts: map[string]SortKey{
		"createdAt": {Column: "projects.created_at"},
		"title":     {Column: "projects.title"},
		"sortOrder": {Column: "projects.sort_order"},
	},
	Default: []Order{
		{Key: SortKey{Column: "projects.sort_order"}},
		{Key: SortKey{Column: "projects.created_at"}, Desc: true},
	},
	Hidden: Eq("projects.is_active", true),
}

// Categories lists project and service categories.
var Categories = &Entity{
	Name:   "category",
	Table:  "categories",
	Search: []string{"categories.name", "categories.description"},
	Filters: []Filter{
		{Param: "type", Column: "categories.type", Kind: Enum, Values: models.CategoryTypes},
		{Param: "status", Column: "categories.is_active", Kind: Mapped, Map: activeStates},
	},
	Sorts: map[string]SortKey{
		"name":      {Column: "categories.name"},
		"sortOrder": {Column: "categories.sort_order"},
		"createdAt": {Column: "categories.created_at"},
	},
	Default: []Order{
		{Key: SortKey{Column: "categories.type"}},
		{Key: SortKey{Column: "categories.sort_order"}},
		{Key: SortKey{Column: "categories.name"}},
	},
	Hidden: Eq("categories.is_active", true),
}

// Inquiries lists contact-form submissions. The public sees none.
var Inquiries = &Entity{
	Name:   "inquiry",
	Table:  "inquiries",
	Search: []string{"inquiries.name", "inquiries.email", "inquiries.company", "inquiries.subject"},
	Filters: []Filter{
		{Param: "status", Column: "inquiries.status", Kind: Enum, Values: models.InquiryStatuses},
		{Param: "priority", Column: "inquiries.priority", Kind: Enum, Values: models.InquiryPriorities},
		{Param: "type", Column: "inquiries.inquiry_type", Kind: Enum, Values: models.InquiryTypes},
	},
	Sorts: map[string]SortKey{
		"createdAt": {Column: "inquiries.created_at"},
		"priority":  {Column: rank("inquiries.priority", models.InquiryPriorities)},
		"status":    {Column: rank("inquiries.status", models.InquiryStatuses)},
	},
	Default: []Order{
		{Key: SortKey{Column: "inquiries.created_at"}, Desc: true},
	},
	Hidden: False,
}

// Testimonials lists client quotes. Every testimonial is public.
var Testimonials = &Entity{
	Name:  "testimonial",
	Table: "testimonials",
	Search: []string{
		"testimonials.first_name", "testimonials.last_name",
		"testimonials.company", "testimonials.text",
	},
	Sorts: map[string]SortKey{
		"createdAt": {Column: "testimonials.created_at"},
		"lastName":  {Column: "testimonials.last_name"},
	},
	Default: []Order{
		{Key: SortKey{Column: "testimonials.created_at"}, Desc: true},
	},
}

// TeamMembers lists the team. The public page needs both flags set.
var TeamMembers = &Entity{
	Name:  "team member",
	Table: "team_members",
	Search: []string{
		"team_members.display_name", "team_members.first_name", "team_members.last_name",
		"team_members.job_title", "team_members.department",
	},
	Filters: []Filter{
		{Param: "department", Column: "team_members.department", Kind: Text},
		{Param: "status", Column: "team_members.is_active", Kind: Mapped, Map: activeStates},
		{Param: "visibility", Column: "team_members.is_public", Kind: Mapped, Map: publicStates},
	},
	Sorts: map[string]SortKey{
		"sortOrder": {Column: "team_members.sort_order"},
		"createdAt": {Column: "team_members.created_at"},
		"lastName":  {Column: "team_members.last_name"},
	},
	Default: []Order{
		{Key: SortKey{Column: "team_members.sort_order"}},
		{Key: SortKey{Column: "team_members.created_at"}, Desc: true},
	},
	Hidden: And(
		Eq("team_members.is_public", true),
		Eq("team_members.is_active", true),
	),
}

// BlogPosts lists articles. The public sees published posts only.
var BlogPosts = &Entity{
	Name:   "blog post",
	Table:  "blog_posts",
	Search: []string{"blog_posts.title", "blog_posts.excerpt", "blog_posts.author"},
	Filters: []Filter{
		{Param: "status", Column: "blog_posts.status", Kind: Enum, Values: models.BlogStatuses},
		{Param: "category", Column: "blog_posts.category", Kind: Text},
		{Param: "featured", Column: "blog_posts.featured", Kind: Mapped, Map: boolStates},
	},
	Sorts: map[string]SortKey{
		"createdAt":   {Column: "blog_posts.created_at"},
		"publishedAt": {Column: "blog_posts.published_at", NullsLast: true},
		"viewCount":   {Column: "blog_posts.view_count"},
		"title":       {Column: "blog_posts.title"},
	},
	Default: []Order{
		{Key: SortKey{Column: "blog_posts.created_at"}, Desc: true},
	},
	Hidden: Eq("blog_posts.status", string(models.BlogStatusPublished)),
}
