package database

import (
	"context"
	"fmt"

	"makeyou-digital/backend/models"
)

var sampleLeads = []models.Lead{
	{Name: "John Doe", Email: "john.doe@example.com", Phone: "+1 (555) 123-4567", ProjectType: "E-commerce Website", Budget: "₹30,000 - ₹50,000", Timeline: "2-3 months",
		Description: "Looking to build a full-featured e-commerce platform with payment integration, product catalog, and user authentication."},
	{Name: "Sarah Johnson", Email: "sarah.j@techstartup.com", Phone: "+1 (555) 234-5678", ProjectType: "SaaS Application", Budget: "₹80,000+", Timeline: "4-6 months",
		Description: "Need a SaaS dashboard with subscription management, analytics, and multi-tenant architecture."},
	{Name: "Michael Chen", Email: "mchen@designstudio.com", Phone: "+1 (555) 345-6789", ProjectType: "Portfolio Website", Budget: "₹10,000 - ₹20,000", Timeline: "3-4 weeks",
		Description: "Clean, modern portfolio website with animations and interactive elements to showcase design work."},
	{Name: "Emily Rodriguez", Email: "emily.r@ngoworld.org", Phone: "+1 (555) 456-7890", ProjectType: "NGO Website", Budget: "₹20,000 - ₹30,000", Timeline: "6-8 weeks",
		Description: "Website for non-profit organization with donation integration, event calendar, and volunteer management."},
	{Name: "David Park", Email: "dpark@mobileapp.io", Phone: "+1 (555) 567-8901", ProjectType: "Mobile App", Budget: "₹50,000 - ₹80,000", Timeline: "3-4 months",
		Description: "Cross-platform mobile app for food delivery with real-time tracking and payment processing."},
	{Name: "Lisa Wang", Email: "lisa.wang@consulting.com", Phone: "+1 (555) 678-9012", ProjectType: "Corporate Website", Budget: "₹30,000 - ₹50,000", Timeline: "8-10 weeks",
		Description: "Professional corporate website for consulting firm with case studies, team profiles, and client portal."},
	{Name: "James Thompson", Email: "jthompson@ecommerce.net", Phone: "+1 (555) 789-0123", ProjectType: "Custom Web Application", Budget: "₹80,000+", Timeline: "5-6 months",
		Description: "Custom inventory management system with API integrations, reporting, and multi-user access."},
	{Name: "Priya Sharma", Email: "priya.s@edtech.in", Phone: "+91 98765 43210", ProjectType: "Learning Platform", Budget: "₹50,000 - ₹80,000", Timeline: "3-4 months",
		Description: "Online learning platform with video courses, quizzes, progress tracking, and certification."},
}

// SeedLeads inserts the demo leads and reports how many were stored.
func SeedLeads(ctx context.Context, store LeadStore) (int, error) {
	n := 0
	for _, l := range sampleLeads {
		lead := l
		if err := store.Create(ctx, &lead); err != nil {
			return n, fmt.Errorf("seed %s: %w", l.Email, err)
		}
		n++
	}
	return n, nil
}
