package store

import (
	"time"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// DefaultSeed returns the sample dataset the yard application ships with:
// the overwintered founder colony, its February inspection entry, current
// shed stock and the opening fiscal ledger.
func DefaultSeed() Seed {
	return Seed{
		Entries: []models.JournalEntry{
			{
				ID:     "entry-feb-5",
				Date:   time.Date(2024, 2, 5, 14, 30, 0, 0, time.UTC),
				Author: "Justin Simpson",
				Weather: models.WeatherSnapshot{
					Temperature: 54,
					Condition:   "Overcast",
					Wind:        "W 15mph (Biting)",
				},
				Phenology: "Sea Fig (Carpobrotus chilensis) in early bloom. Rosemary pungent.",
				Narrative: "A quiet day in the yard until the wind picked up off the Pacific. " +
					"The Founder Colony is holding on, though the cluster is remarkably small. " +
					"Encouragingly, we spotted the Queen; she is laying, despite the chill. " +
					"Mark applied Varroxsan strips to knock back the mite load before the critical spring buildup.",
				TechnicalNotes: models.TechnicalNotes{
					ClusterSize: "< Basketball",
					QueenStatus: models.QueenRight,
					Interventions: []string{
						"Applied Varroxsan strips (2 per brood box) to address potential phoretic mite load",
						"Performed thorough brood pattern analysis (Frame 4 & 5)",
						"Cleaned bottom board debris",
						"Reduced entrance to prevent robbing during nectar dearth",
					},
					Diseases: []string{"Brood disease signs noted (monitor)"},
				},
				Tags: []string{"Mark Carlson", "Marc Johnson"},
				Media: []models.MediaAttachment{
					{Type: "image", URL: "https://picsum.photos/seed/bees1/800/600?grayscale", Caption: "Low density brood pattern observed on Frame 4."},
					{Type: "image", URL: "https://picsum.photos/seed/bees2/800/600?grayscale", Caption: "Queen spotted on Frame 5, moving well."},
				},
			},
		},
		Colonies: []models.ColonyProfile{
			{
				ID:             "col-1",
				Name:           "The Founder Colony",
				Type:           models.ColonyOverwintered,
				Status:         models.ColonyActive,
				QueenName:      "Queen Victoria (Unmarked)",
				HealthScore:    65,
				LastInspection: time.Date(2024, 2, 5, 14, 30, 0, 0, time.UTC),
				Notes:          "Small cluster. Varroa treatment ongoing. Needs syrup if temp drops below 50F for extended periods.",
			},
			{
				ID:             "col-2",
				Name:           "The Spring Split",
				Type:           models.ColonySplit,
				Status:         models.ColonyPlanned,
				HealthScore:    0,
				LastInspection: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				Notes:          "Equipment ready. Scheduled for late March/April depending on Founder Colony buildup.",
			},
		},
		Inventory: []models.InventoryItem{
			{ID: "inv-1", Name: "Deep Hive Body (10-frame)", Category: models.CategoryHiveBody, Quantity: 4, Status: models.StatusGood, History: []models.InventoryLog{}},
			{ID: "inv-2", Name: "Medium Super (8-frame)", Category: models.CategoryHiveBody, Quantity: 6, Status: models.StatusGood, History: []models.InventoryLog{}},
			{
				ID: "inv-3", Name: "Frames (New Plastic Foundation)", Category: models.CategoryFrame, Quantity: 20,
				Status: models.StatusGood, Notes: "Expected delivery Feb 20",
				History: []models.InventoryLog{
					{ID: "log-1", Date: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), Action: models.ActionCreated, Actor: "Justin S.", Note: "Ordered for spring split."},
				},
			},
			{ID: "inv-4", Name: "Varroxsan Strips", Category: models.CategoryTreatment, Quantity: 1, Status: models.StatusGood, History: []models.InventoryLog{}},
			{
				ID: "inv-5", Name: "Moldy Frames (Frame 8/9)", Category: models.CategoryFrame, Quantity: 2,
				Status: models.StatusFlagged, Notes: "Excessive mold, possible nosema spores. Bagged.",
				History: []models.InventoryLog{
					{ID: "log-2", Date: time.Date(2024, 2, 5, 15, 0, 0, 0, time.UTC), Action: models.ActionFlagged, Actor: "Mark C.", Note: "Removed from Founder Colony due to mold."},
				},
			},
		},
		Crew: []models.CrewMember{
			{Name: "Mark Carlson", Role: "Senior Advisor", Initials: "MC", Email: "markacarlson@gmail.com", Phone: "(415) 542-8154"},
			{Name: "Marc Johnson", Role: "Senior Advisor", Initials: "MJ", Email: "marc@sfbee.org", Phone: "(415) 225-2594"},
			{Name: "Annie Ash", Role: "Beekeeper", Initials: "AA", Email: "annie.e.ash@gmail.com"},
			{Name: "Justin Simpson", Role: "Mentor", Initials: "JS", Email: "justin.s.simpson@mac.com", Phone: "(650) 509-7682"},
			{Name: "David Dubinsky", Role: "Pomeroy CEO", Initials: "DD", Email: "ddubinsky@prrcsf.org", Phone: "(415) 213-8564"},
			{Name: "Jillian Flannery", Role: "Pomeroy Centre", Initials: "JF", Email: "jflannery@prrcsf.org"},
		},
		Documents: []models.ArchiveDocument{
			{ID: "d1", Name: "2024_Pomeroy_Apiary_Budget.pdf", Type: models.DocPDF, Category: models.DocFiscal, DateAdded: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Size: "1.2 MB"},
			{ID: "d2", Name: "Varroxsan_Safety_Data_Sheet.pdf", Type: models.DocPDF, Category: models.DocReference, DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Size: "450 KB"},
			{ID: "d3", Name: "Disposal_Protocol_v2.docx", Type: models.DocWord, Category: models.DocProtocol, DateAdded: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), Size: "28 KB"},
			{ID: "d4", Name: "Receipt_Mann_Lake_Feb_Order.img", Type: models.DocImage, Category: models.DocFiscal, DateAdded: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), Size: "2.4 MB"},
		},
		BudgetLimit: 100,
		Expenses: []models.BudgetItem{
			{ID: "exp-1", Description: "Varroxsan Pack (10 strips)", Amount: 45.50, Date: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), Category: models.ExpenseTreatment},
			{ID: "exp-2", Description: "Pollen Patties (2lb)", Amount: 12.00, Date: time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC), Category: models.ExpenseFeed},
		},
	}
}
