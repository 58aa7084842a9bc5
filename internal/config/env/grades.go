package env

import (
	"errors"
	"fmt"
	"os"

	"studyhub_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type gradeScaleFile struct {
	GradeScale struct {
		DefaultTargetGPA float64            `yaml:"default_target_gpa"`
		GradePoints      map[string]float64 `yaml:"grade_points"`
	} `yaml:"grade_scale"`
}

type gradeScaleConfig struct {
	points           map[string]float64
	defaultTargetGPA float64
}

// NewGradeScaleFromYAML - загружает таблицу баллов за оценки из yaml файла
func NewGradeScaleFromYAML(path string) (config.GradeScaleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grade scale config: %w", err)
	}

	var file gradeScaleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse grade scale config: %w", err)
	}

	if len(file.GradeScale.GradePoints) == 0 {
		return nil, errors.New("grade scale config has no grade points")
	}
	for grade, points := range file.GradeScale.GradePoints {
		if points < 0 {
			return nil, fmt.Errorf("grade %q has negative points", grade)
		}
	}

	return &gradeScaleConfig{
		points:           file.GradeScale.GradePoints,
		defaultTargetGPA: file.GradeScale.DefaultTargetGPA,
	}, nil
}

func (cfg *gradeScaleConfig) Points(grade string) (float64, bool) {
	points, ok := cfg.points[grade]
	return points, ok
}

func (cfg *gradeScaleConfig) DefaultTargetGPA() float64 {
	return cfg.defaultTargetGPA
}
