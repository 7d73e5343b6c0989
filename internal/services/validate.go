package services

import (
	"fmt"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/dag"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/principals"
)

// validate enforces the structural rules over a built service set: unique
// service names, unique environment keys per service, every DependsOn/Wants
// target resolvable against a declared service or known unit, every service
// account resolvable against a declared or distro-managed principal, and an
// acyclic dependency graph.
func validate(svcs []Service, prins []principals.Principal) error {
	declared := make(map[string]struct{}, len(svcs))
	for _, svc := range svcs {
		if _, ok := declared[svc.Name]; ok {
			return &DuplicateNameError{Kind: "service", Name: svc.Name}
		}
		declared[svc.Name] = struct{}{}
	}

	users := make(map[string]struct{})
	for _, p := range prins {
		if p.Kind == principals.KindUser {
			users[p.Name] = struct{}{}
		}
	}

	graph := dag.New()
	for _, svc := range svcs {
		graph.AddNode(svc.Name)
	}

	for _, svc := range svcs {
		seen := make(map[string]struct{}, len(svc.Environment))
		for _, env := range svc.Environment {
			if _, ok := seen[env.Key]; ok {
				return &DuplicateNameError{Kind: "environment variable", Name: env.Key}
			}
			seen[env.Key] = struct{}{}
		}

		for _, ref := range append(append([]string{}, svc.DependsOn...), svc.Wants...) {
			if graph.HasNode(ref) {
				if err := graph.AddEdge(ref, svc.Name); err != nil {
					return err
				}
				continue
			}
			if _, ok := knownUnits[ref]; ok {
				continue
			}
			return &DependencyReferenceError{Service: svc.Name, Ref: ref}
		}

		if svc.User != "" {
			if _, ok := users[svc.User]; !ok {
				if _, distro := distroAccounts[svc.User]; !distro {
					return &DependencyReferenceError{Service: svc.Name, Ref: svc.User}
				}
			}
		}
	}

	if err := graph.DetectCycles(); err != nil {
		return fmt.Errorf("error validating service dependency graph: %w", err)
	}

	return nil
}
