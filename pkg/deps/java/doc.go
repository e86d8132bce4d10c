// Package java provides pom.xml and build.gradle parsing and Maven Central
// version lookups.
//
// # Manifest Parsing
//
// [POMParser] reads every <dependency> element of a pom.xml and emits
// "artifactId:version" tokens. Maven properties such as ${spring.version}
// are not expanded.
//
// [GradleParser] matches string-notation declarations:
//
//	implementation 'com.google.guava:guava:32.1.3-jre'
//	testImplementation "junit:junit:4.13.2"
//
// and emits "group:artifact:version" tokens. Map notation, version catalogs
// and Kotlin DSL files are not read.
package java
