package nps

const (
	lowScoreMax    = 3
	lowNPSPageSize = 20
)

// LowNPSContact is the projection of an at-risk contact exposed to the
// dashboard frontend.
type LowNPSContact struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	PhoneNumber          string  `json:"phoneNumber"`
	PhoneNumberFormatted string  `json:"phoneNumberFormatted"`
	Email                string  `json:"email"`
	UpdatedAt            string  `json:"updatedAt"`
	NPS                  float64 `json:"nps"`
}

type ScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

type LowNPSPage struct {
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	Items      []LowNPSContact `json:"items"`
}

// Dashboard is the summary payload for one dashboard request.
type Dashboard struct {
	AverageNPS    *float64        `json:"averageNps"`
	TotalContacts int             `json:"totalContacts"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	NPSSummary    []ScoreCount    `json:"npsSummary"`
	LowNPS        LowNPSPage      `json:"lowNps"`
	LowNPSAll     []LowNPSContact `json:"lowNpsAllItems"`
}

// BuildDashboard computes the summary payload from the aggregated
// contacts: average score (null when there are no contacts), a
// zero-filled per-score histogram, and the at-risk list both as a
// clamped 20-per-page slice and in full. startDate and endDate are
// echoed back untouched.
func BuildDashboard(contacts []ScoredContact, page int, startDate, endDate string) Dashboard {
	summary := make([]ScoreCount, maxScore-minScore+1)
	for i := range summary {
		summary[i] = ScoreCount{Score: minScore + i}
	}

	var sum float64
	lowNPS := make([]LowNPSContact, 0)
	for _, contact := range contacts {
		sum += contact.NPSValue

		// Only whole scores 1-5 land in the histogram; fractional and
		// out-of-range values still count toward the average.
		if whole := int(contact.NPSValue); float64(whole) == contact.NPSValue && whole >= minScore && whole <= maxScore {
			summary[whole-minScore].Count++
		}

		if contact.NPSValue <= lowScoreMax {
			lowNPS = append(lowNPS, LowNPSContact{
				ID:                   contact.ID,
				Name:                 contact.Name,
				PhoneNumber:          contact.PhoneNumber,
				PhoneNumberFormatted: contact.PhoneNumberFormatted,
				Email:                contact.Email,
				UpdatedAt:            contact.UpdatedAt,
				NPS:                  contact.NPSValue,
			})
		}
	}

	var average *float64
	if len(contacts) > 0 {
		avg := sum / float64(len(contacts))
		average = &avg
	}

	totalPages := (len(lowNPS) + lowNPSPageSize - 1) / lowNPSPageSize
	if totalPages < 1 {
		totalPages = 1
	}

	// An out-of-range page is clamped, never an error.
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * lowNPSPageSize
	end := start + lowNPSPageSize
	if start > len(lowNPS) {
		start = len(lowNPS)
	}
	if end > len(lowNPS) {
		end = len(lowNPS)
	}

	return Dashboard{
		AverageNPS:    average,
		TotalContacts: len(contacts),
		StartDate:     startDate,
		EndDate:       endDate,
		NPSSummary:    summary,
		LowNPS: LowNPSPage{
			Page:       page,
			PageSize:   lowNPSPageSize,
			TotalItems: len(lowNPS),
			TotalPages: totalPages,
			Items:      lowNPS[start:end],
		},
		LowNPSAll: lowNPS,
	}
}
