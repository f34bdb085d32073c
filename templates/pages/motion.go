package pages

import (
	"fmt"
	"time"

	"digital_analytics_site/models"
	"digital_analytics_site/services/motion"
)

// ContactFormChildren is how many blocks of the form the entrance stagger sequences
const ContactFormChildren = 5

// SectionTriggers holds the scroll bindings of every landing section
type SectionTriggers struct {
	Hero        *motion.Trigger
	CaseStudies *motion.Trigger
	Process     *motion.Trigger
	Contact     *motion.Trigger
}

// All returns the triggers in page order
func (s SectionTriggers) All() []*motion.Trigger {
	return []*motion.Trigger{s.Hero, s.CaseStudies, s.Process, s.Contact}
}

// NewSectionTriggers binds each section's blocks. motion.Init must have run.
func NewSectionTriggers(site *models.SiteContent) (SectionTriggers, error) {
	var s SectionTriggers
	var err error

	if s.Hero, err = motion.NewTrigger("hero"); err != nil {
		return s, err
	}
	if err := s.Hero.Bind("#services-section", motion.FadeUpOnScroll, motion.WithStart(80)); err != nil {
		return s, err
	}

	if s.CaseStudies, err = motion.NewTrigger("case-studies"); err != nil {
		return s, err
	}
	if err := s.CaseStudies.Bind("#capabilities-heading-block", motion.FadeUpOnScroll, motion.WithStart(90)); err != nil {
		return s, err
	}
	for i := range site.CaseStudies.Items {
		if err := s.CaseStudies.Bind(fmt.Sprintf("#capability-%d-content", i), motion.FadeUpOnScroll, motion.WithStart(90)); err != nil {
			return s, err
		}
		if err := s.CaseStudies.Bind(fmt.Sprintf("#capability-%d-image", i), motion.FadeUpOnScroll,
			motion.WithStart(90), motion.WithDelay(200*time.Millisecond)); err != nil {
			return s, err
		}
	}

	if s.Process, err = motion.NewTrigger("process"); err != nil {
		return s, err
	}
	if err := s.Process.Bind("#process-heading-block", motion.FadeUpOnScroll); err != nil {
		return s, err
	}
	if n := len(site.Process.Steps); n > 0 {
		if err := s.Process.Bind("#process-steps", motion.FadeUpOnScroll,
			motion.WithStagger(150*time.Millisecond, "#process-steps > li"), motion.WithChildren(n)); err != nil {
			return s, err
		}
	}

	if s.Contact, err = motion.NewTrigger("contact"); err != nil {
		return s, err
	}
	if err := s.Contact.Bind("#contact-heading-block", motion.FadeUpOnScroll, motion.WithStart(80)); err != nil {
		return s, err
	}
	if err := s.Contact.Bind("#contact-form-wrapper", motion.StaggerFadeUpOnScroll, motion.WithChildren(ContactFormChildren)); err != nil {
		return s, err
	}

	return s, nil
}
