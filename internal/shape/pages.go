// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shape

import "apigs/internal/models"

// CompanyStatsView holds the headline numbers shown on the site. All three
// are zero while no company record has been saved.
type CompanyStatsView struct {
	TeamMembersCount  int `json:"teamMembersCount"`
	YearsExperience   int `json:"yearsExperience"`
	ProjectsCompleted int `json:"projectsCompleted"`
}

func CompanyStats(c *models.CompanyDetails) CompanyStatsView {
	if c == nil {
		return CompanyStatsView{}
	}
	return CompanyStatsView{
		TeamMembersCount:  c.TeamMembersCount,
		YearsExperience:   c.YearsExperience,
		ProjectsCompleted: c.ProjectsCompleted,
	}
}

// HomeView is every section of the landing page in one document.
type HomeView struct {
	Company      CompanyDetailsView `json:"company"`
	Team         []TeamMemberView   `json:"team"`
	Testimonials []TestimonialView  `json:"testimonials"`
	Projects     []ProjectView      `json:"projects"`
}

// Home assembles the landing page. Records must already be restricted to
// what the public may see.
func Home(c *models.CompanyDetails, team []models.TeamMember, testimonials []models.Testimonial, projects []models.Project) HomeView {
	return HomeView{
		Company:      CompanyDetails(c),
		Team:         List(team, publicTeamMember).Items,
		Testimonials: List(testimonials, Testimonial).Items,
		Projects:     List(projects, Project).Items,
	}
}

// AboutView is the about page: the company profile and its public team.
type AboutView struct {
	Company CompanyDetailsView `json:"company"`
	Team    []TeamMemberView   `json:"team"`
}

func About(c *models.CompanyDetails, team []models.TeamMember) AboutView {
	return AboutView{
		Company: CompanyDetails(c),
		Team:    List(team, publicTeamMember).Items,
	}
}
