// file: internals/helpers/codes.go
package helper

import (
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// CounterModel: sequence per key untuk pembangkitan kode (subject/branch).
type CounterModel struct {
	CounterKey string `gorm:"column:counter_key;primaryKey"`
	CounterSeq int64  `gorm:"column:counter_seq;not null;default:0"`
}

func (CounterModel) TableName() string { return "counters" }

var (
	SubjectCodeRe = regexp.MustCompile(`^KRJ-(20\d{2})-[A-Z]{2,5}-\d{3}$`)
	BranchCodeRe  = regexp.MustCompile(`^KRJ-\d{4}-[A-Z]{2,5}-\d{2}$`)
)

// NextSequence menaikkan counter untuk key secara atomik di dalam tx.
func NextSequence(tx *gorm.DB, key string) (int64, error) {
	var seq int64
	err := tx.Raw(`
		INSERT INTO counters (counter_key, counter_seq)
		VALUES (?, 1)
		ON CONFLICT (counter_key)
		DO UPDATE SET counter_seq = counters.counter_seq + 1
		RETURNING counter_seq
	`, key).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// GenerateSubjectCode: KRJ-YYYY-INI-NNN (counter per tahun+inisial).
func GenerateSubjectCode(tx *gorm.DB, year int, initials string) (string, error) {
	seq, err := NextSequence(tx, fmt.Sprintf("SUBJECT_%d_%s", year, initials))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("KRJ-%d-%s-%03d", year, initials, seq)
	if !SubjectCodeRe.MatchString(code) {
		return "", fmt.Errorf("generated subject code is invalid: %s", code)
	}
	return code, nil
}

// GenerateBranchCode: KRJ-YYYY-AAA-NN (counter per tahun+area).
func GenerateBranchCode(tx *gorm.DB, year int, areaCode string) (string, error) {
	seq, err := NextSequence(tx, fmt.Sprintf("BRANCH_%d_%s", year, areaCode))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("KRJ-%d-%s-%02d", year, areaCode, seq)
	if !BranchCodeRe.MatchString(code) {
		return "", fmt.Errorf("generated branch code is invalid: %s", code)
	}
	return code, nil
}
