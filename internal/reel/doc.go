// Package reel converts a news article into a vertical video reel.
//
// The pipeline runs in five stages, each traced as its own span:
//
//   - FetchArticle downloads the page and extracts paragraph text
//   - Summarise picks up to MaxScenes evenly spaced paragraphs
//   - Speaker narrates each scene (ElevenLabs, silence as fallback)
//   - WriteSRT lays out one subtitle cue per scene
//   - FFmpeg composes background, narration and subtitles into an mp4
package reel
