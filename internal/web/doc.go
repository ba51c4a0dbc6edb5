// Package web wires the HTTP surface of the site: the localized CV page,
// the carousel navigation endpoints, the contact form, and the vCard
// downloads.
//
// Rendering is split per section behind the SectionRenderer interface so the
// page handler stays ignorant of what a section looks like; renderers are
// injected at startup. Carousel endpoints are thin: they run the pure
// view-window arithmetic from the carousel package and push the resulting
// offset and button flags back to the browser as Datastar signal patches.
package web
