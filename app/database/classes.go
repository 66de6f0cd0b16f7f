package database

import (
	"database/sql"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// GetAllClasses returns classes in display order
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT id, name, level, order_number
			  FROM classes
			  ORDER BY order_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.Level, &class.OrderNumber); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// GetSectionsGroupedByClass returns all sections organised per class, the
// shape the section dropdown consumes
func GetSectionsGroupedByClass(db *sql.DB) ([]*models.SectionGroup, error) {
	query := `SELECT sec.id, sec.name, c.id AS class_id, c.name AS class_name
			  FROM sections sec
			  JOIN classes c ON sec.class_id = c.id
			  ORDER BY c.order_number, sec.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []*models.SectionGroup{}
	index := make(map[models.ClassID]*models.SectionGroup)
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(&section.ID, &section.Name, &section.ClassID, &section.ClassName); err != nil {
			return nil, err
		}

		group, ok := index[section.ClassID]
		if !ok {
			group = &models.SectionGroup{
				ClassID:   section.ClassID,
				ClassName: section.ClassName,
				Sections:  []models.SectionEntry{},
			}
			index[section.ClassID] = group
			groups = append(groups, group)
		}
		group.Sections = append(group.Sections, models.SectionEntry{ID: section.ID, Name: section.Name})
	}
	return groups, rows.Err()
}
