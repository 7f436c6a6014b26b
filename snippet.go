package gtminject

// Marker identifies the container. Its presence anywhere in a file means the
// file was already processed.
const Marker = "GTM-PHHN8FJS"

// HeadSnippet is inserted immediately before the first </head>.
const HeadSnippet = `<!-- Google Tag Manager -->
<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':
new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],
j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src=
'https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);
})(window,document,'script','dataLayer','GTM-PHHN8FJS');</script>
<!-- End Google Tag Manager -->`

// NoscriptSnippet is inserted immediately after the first opening <body> tag.
const NoscriptSnippet = `<!-- Google Tag Manager (noscript) -->
<noscript><iframe src="https://www.googletagmanager.com/ns.html?id=GTM-PHHN8FJS"
height="0" width="0" style="display:none;visibility:hidden"></iframe></noscript>
<!-- End Google Tag Manager (noscript) -->`
