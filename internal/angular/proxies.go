// Package angular turns compiled web-component descriptors into Angular
// directive proxies: one wrapper class per custom element, forwarding
// property access and method calls to the underlying element and exposing
// its events as RxJS observables.
//
// Generation is best-effort by policy. Descriptors are never validated;
// missing documentation fields interpolate as empty strings so a broken
// descriptor garbles one comment instead of failing the build.
package angular

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matthewbaird/proxygen/internal/config"
	"github.com/matthewbaird/proxygen/internal/wcmeta"
)

// GenerateProxies renders the complete proxies module for one output target.
// typesPath is the compiler's declarations entry from the package manifest.
// Components appear in manifest order; writing the result is the caller's
// problem.
func GenerateProxies(components []wcmeta.Component, target config.OutputTarget, typesPath string) string {
	parts := []string{proxiesHeader}

	if target.DirectivesUtilsFile != "" {
		utilsImport := RelativeImport(target.DirectivesProxyFile, target.DirectivesUtilsFile, ".ts")
		parts = append(parts, fmt.Sprintf("import { ProxyCmp, proxyOutputs } from '%s';", utilsImport))
	} else {
		parts = append(parts, utilsModule)
	}

	typeImportPath := target.ComponentCorePackage
	if typeImportPath == "" {
		typeImportPath = RelativeImport(target.DirectivesProxyFile, typesPath, ".d.ts")
	}
	parts = append(parts, fmt.Sprintf("import { Components } from '%s';", typeImportPath))

	typesDir := filepath.Dir(typesPath)
	for _, cmp := range components {
		parts = append(parts, componentDefinition(cmp, target, typesDir))
	}

	return strings.Join(parts, "\n\n") + "\n"
}

// componentDefinition renders one wrapper class block.
func componentDefinition(cmp wcmeta.Component, target config.OutputTarget, typesDir string) string {
	inputs := componentInputs(cmp)
	outputs := componentOutputs(cmp)
	methods := componentMethods(cmp)

	outputNames := make([]string, len(outputs))
	for i, ev := range outputs {
		outputNames[i] = ev.Name
	}

	wrapper := dashToPascalCase(cmp.Tag)
	var lines []string

	// The component's own interface types the event fields; only needed
	// when there is at least one output to declare.
	if len(outputs) > 0 {
		dtsPath := cmp.SourceFilePath
		if target.RootDir != "" {
			dtsPath = strings.Replace(dtsPath, target.RootDir, typesDir, 1)
		}
		typeImport := RelativeImport(target.DirectivesProxyFile, dtsPath, filepath.Ext(dtsPath))
		lines = append(lines, fmt.Sprintf("import type { %s as I%s } from '%s';", cmp.ClassName, cmp.ClassName, typeImport))
	}

	lines = append(lines, fmt.Sprintf("export declare interface %s extends Components.%s {}", wrapper, wrapper))

	var proxyMeta []string
	if len(inputs) > 0 {
		proxyMeta = append(proxyMeta, "  inputs: "+formatArray(inputs))
	}
	if len(methods) > 0 {
		proxyMeta = append(proxyMeta, "  methods: "+formatArray(methods))
	}
	if len(proxyMeta) > 0 {
		lines = append(lines, "@ProxyCmp({\n"+strings.Join(proxyMeta, ",\n")+"\n})")
	}

	cmpMeta := []string{
		fmt.Sprintf("  selector: '%s'", cmp.Tag),
		"  changeDetection: ChangeDetectionStrategy.OnPush",
		"  template: '<ng-content></ng-content>'",
	}
	if len(inputs) > 0 {
		cmpMeta = append(cmpMeta, "  inputs: "+formatArray(inputs))
	}
	if len(outputNames) > 0 {
		cmpMeta = append(cmpMeta, "  outputs: "+formatArray(outputNames))
	}
	lines = append(lines, "@Component({\n"+strings.Join(cmpMeta, ",\n")+"\n})")

	lines = append(lines, fmt.Sprintf("export class %s {", wrapper))
	for _, ev := range outputs {
		lines = append(lines, "  /** "+eventDoc(ev)+" */")
		lines = append(lines, fmt.Sprintf("  %s!: I%s['%s'];", ev.Name, cmp.ClassName, ev.Method))
	}
	lines = append(lines, "  protected el: HTMLElement;")
	lines = append(lines, "  constructor(c: ChangeDetectorRef, r: ElementRef, protected z: NgZone) {")
	lines = append(lines, "    c.detach();")
	lines = append(lines, "    this.el = r.nativeElement;")
	if len(outputNames) > 0 {
		lines = append(lines, fmt.Sprintf("    proxyOutputs(this, this.el, %s);", formatArray(outputNames)))
	}
	lines = append(lines, "  }")
	lines = append(lines, "}")

	return strings.Join(lines, "\n")
}

// componentInputs is the deduplicated union of public property names and
// virtual property names. Alphabetical order is part of the output contract.
func componentInputs(cmp wcmeta.Component) []string {
	seen := map[string]bool{}
	var inputs []string
	for _, p := range cmp.Properties {
		if p.Internal || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		inputs = append(inputs, p.Name)
	}
	for _, vp := range cmp.VirtualProperties {
		if seen[vp.Name] {
			continue
		}
		seen[vp.Name] = true
		inputs = append(inputs, vp.Name)
	}
	sort.Strings(inputs)
	return inputs
}

// componentOutputs keeps public events in declaration order.
func componentOutputs(cmp wcmeta.Component) []wcmeta.Event {
	var outputs []wcmeta.Event
	for _, ev := range cmp.Events {
		if ev.Internal {
			continue
		}
		outputs = append(outputs, ev)
	}
	return outputs
}

// componentMethods keeps public method names in declaration order.
func componentMethods(cmp wcmeta.Component) []string {
	var methods []string
	for _, m := range cmp.Methods {
		if m.Internal {
			continue
		}
		methods = append(methods, m.Name)
	}
	return methods
}

func eventDoc(ev wcmeta.Event) string {
	parts := []string{ev.Docs.Text}
	for _, tag := range ev.Docs.Tags {
		parts = append(parts, fmt.Sprintf("@%s %s", tag.Name, tag.Text))
	}
	return strings.Join(parts, " ")
}

// dashToPascalCase turns a kebab-case tag name into the wrapper identifier,
// e.g. "ion-button" becomes "IonButton".
func dashToPascalCase(tag string) string {
	parts := strings.Split(tag, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

func formatArray(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
