package service

import (
	"fmt"
	"sort"
	"strings"
)

// failedValidation flattens a validation error map into a single error
// wrapping ErrFailedValidation. Keys are sorted so the message is stable.
func (s *service) failedValidation(errorMap map[string]string) error {
	keys := make([]string, 0, len(errorMap))
	for key := range errorMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	messages := make([]string, 0, len(keys))
	for _, key := range keys {
		messages = append(messages, fmt.Sprintf("%s %s", key, errorMap[key]))
	}
	return fmt.Errorf("%w: %s", ErrFailedValidation, strings.Join(messages, "; "))
}

// checkAuthorsExist verifies that every id resolves to a stored author.
func (s *service) checkAuthorsExist(authorIDs []int64) error {
	for _, authorID := range authorIDs {
		exists, err := s.repo.AuthorExists(authorID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrRecordNotFound
		}
	}
	return nil
}

// checkCategoriesExist verifies that every id resolves to a stored category.
func (s *service) checkCategoriesExist(categoryIDs []int64) error {
	for _, categoryID := range categoryIDs {
		exists, err := s.repo.CategoryExists(categoryID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrRecordNotFound
		}
	}
	return nil
}
