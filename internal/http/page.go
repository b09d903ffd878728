package http

// pageTpl renders the whole slideshow; slides are embedded as JSON and
// played client-side.
const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Slideshow</title>
<style>
html,body{height:100%;margin:0}
body{font-family:Georgia,'Times New Roman',serif;background:#1b1014;color:#fbe9ee;overflow:hidden}
button{font:inherit;background:#3a1f29;color:inherit;border:1px solid #7a4658;border-radius:999px;padding:.45rem 1rem;cursor:pointer}
button:disabled{opacity:.4;cursor:default}
button.playing{background:#7a2f49}
.view{display:none;height:100%;flex-direction:column;align-items:center;justify-content:center}
.view.active{display:flex}
.welcome-inner{text-align:center}
.welcome-inner h1{font-size:2.6rem;margin:0 0 1rem}
.gallery-stage{position:relative;width:min(92vw,1100px);height:72vh;display:flex;align-items:center;justify-content:center}
.photo-frame{max-width:100%;max-height:100%;text-align:center}
.photo-frame.hidden{display:none}
.photo-frame img{max-width:100%;max-height:64vh;border-radius:10px;box-shadow:0 12px 40px rgba(0,0,0,.5)}
.caption{opacity:0;transition:opacity .4s;margin-top:.8rem;font-style:italic}
.caption.visible{opacity:1}
.transition-frame{display:none;text-align:center;max-width:720px}
.transition-frame.active{display:block}
.transition-frame h2{font-size:2.2rem;margin:0 0 .6rem}
.folder-info{position:absolute;left:0;top:0;opacity:0;transition:opacity .4s}
.folder-info.visible{opacity:.85}
.folder-info strong{display:block}
.controls{display:flex;gap:.6rem;align-items:center;margin-top:1rem}
.muted{color:#c9a3b0}
.hearts-layer{position:fixed;inset:0;pointer-events:none;z-index:-1}
.heart{position:absolute;width:14px;height:14px;background:#d9466f;animation:rise linear infinite}
.heart:before,.heart:after{content:"";position:absolute;width:14px;height:14px;border-radius:50%;background:#d9466f}
.heart:before{left:-7px}.heart:after{top:-7px}
@keyframes rise{to{bottom:110%}}
</style>
<div class="hearts-layer" aria-hidden="true"></div>

<section id="welcomeView" class="view active">
  <div class="welcome-inner">
    <h1>Our Memories</h1>
    <p class="muted">{{len .Slides}} slides</p>
    <button id="beginBtn">Begin</button>
  </div>
</section>

<section id="galleryView" class="view">
  <div class="gallery-stage">
    <div id="folderInfo" class="folder-info"><strong id="folderTitle"></strong><small id="folderDesc"></small></div>
    <div id="transitionFrame" class="transition-frame">
      <h2 id="transitionTitle"></h2>
      <p id="transitionDesc" class="muted"></p>
    </div>
    <figure class="photo-frame">
      <img id="photoImage" alt="" />
      <figcaption id="photoCaption" class="caption"></figcaption>
    </figure>
  </div>
  <div class="controls">
    <button id="homeBtn">Home</button>
    <button id="backBtn">Back</button>
    <span id="slideCounter" class="muted"></span>
    <button id="nextBtn">Next</button>
    <button id="autoPlayBtn">Play Slideshow</button>
    {{if .Audio}}<button id="audioToggle" aria-pressed="false">Play Music</button>{{end}}
  </div>
</section>

{{if .Audio}}<audio id="bgAudio" src="{{.Audio}}" loop preload="auto"></audio>{{end}}

<script>
(function(){
  var slides = {{.Slides}};
  if (!Array.isArray(slides)) slides = [];
  var hasSlides = slides.length > 0;
  var advanceMs = 10000;

  function $(id){ return document.getElementById(id); }
  var welcomeView = $('welcomeView'), galleryView = $('galleryView');
  var backBtn = $('backBtn'), nextBtn = $('nextBtn'), counter = $('slideCounter');
  var autoPlayBtn = $('autoPlayBtn'), audioToggle = $('audioToggle'), bgAudio = $('bgAudio');
  var photoFrame = document.querySelector('.photo-frame');
  var photoImage = $('photoImage'), photoCaption = $('photoCaption');
  var transitionFrame = $('transitionFrame'), transitionTitle = $('transitionTitle'), transitionDesc = $('transitionDesc');
  var folderInfo = $('folderInfo'), folderTitle = $('folderTitle'), folderDesc = $('folderDesc');

  var mode = 'welcome';
  var current = 0;
  var timer = null;
  var autoPlaying = true;

  function staticURL(rel){
    return '/static/' + String(rel).split('/').map(encodeURIComponent).join('/');
  }
  function updateControls(){
    var total = Math.max(slides.length, 1);
    counter.textContent = Math.min(current + 1, total) + ' / ' + total;
    backBtn.disabled = !hasSlides;
    nextBtn.disabled = !hasSlides || slides.length < 2;
  }
  function render(){
    updateControls();
    if (!hasSlides) return;
    var s = slides[current];
    photoCaption.classList.remove('visible');
    photoCaption.textContent = '';
    if (s.is_transition) {
      photoFrame.classList.add('hidden');
      folderInfo.classList.remove('visible');
      transitionTitle.textContent = s.source_folder || 'Next Memory';
      transitionDesc.textContent = s.folder_description || '';
      transitionFrame.classList.add('active');
      return;
    }
    if (!s.image) {
      // placeholder: a title and a hint, no picture
      photoFrame.classList.add('hidden');
      folderInfo.classList.remove('visible');
      transitionTitle.textContent = s.title || '';
      transitionDesc.textContent = s.caption || '';
      transitionFrame.classList.add('active');
      return;
    }
    transitionFrame.classList.remove('active');
    photoFrame.classList.remove('hidden');
    photoImage.src = staticURL(s.image);
    photoImage.alt = s.caption || s.source_folder || '';
    if (s.caption) {
      photoCaption.textContent = s.caption;
      photoCaption.classList.add('visible');
    }
    if (s.source_folder) {
      folderTitle.textContent = s.source_folder;
      folderDesc.textContent = s.folder_description || '';
      folderInfo.classList.add('visible');
    } else {
      folderInfo.classList.remove('visible');
    }
  }
  function step(delta){
    if (!hasSlides) return;
    current = (current + delta + slides.length) % slides.length;
    render();
  }
  function stopAuto(){
    if (timer) { clearInterval(timer); timer = null; }
    autoPlayBtn.textContent = 'Play Slideshow';
    autoPlayBtn.classList.remove('playing');
  }
  function startAuto(){
    if (!autoPlaying) return;
    stopAuto();
    timer = setInterval(function(){ step(1); }, advanceMs);
    autoPlayBtn.textContent = 'Pause Slideshow';
    autoPlayBtn.classList.add('playing');
  }
  function manual(delta){
    step(delta);
    if (autoPlaying) startAuto();
  }
  function setAudioState(playing){
    if (!audioToggle) return;
    audioToggle.classList.toggle('playing', playing);
    audioToggle.setAttribute('aria-pressed', String(playing));
    audioToggle.textContent = playing ? 'Pause Music' : 'Play Music';
  }
  function tryPlay(){
    if (!bgAudio || !bgAudio.paused) return;
    var p = bgAudio.play();
    if (p && p.then) p.then(function(){ setAudioState(true); }, function(){ setAudioState(false); });
  }
  function showGallery(){
    mode = 'gallery';
    welcomeView.classList.remove('active');
    galleryView.classList.add('active');
    render();
    tryPlay();
    if (autoPlaying) startAuto();
  }
  function showWelcome(){
    mode = 'welcome';
    galleryView.classList.remove('active');
    welcomeView.classList.add('active');
    stopAuto();
  }

  $('beginBtn').addEventListener('click', showGallery);
  $('homeBtn').addEventListener('click', showWelcome);
  backBtn.addEventListener('click', function(){ manual(-1); });
  nextBtn.addEventListener('click', function(){ manual(1); });
  autoPlayBtn.addEventListener('click', function(){
    autoPlaying = !autoPlaying;
    if (autoPlaying) startAuto(); else stopAuto();
  });
  if (audioToggle && bgAudio) {
    audioToggle.addEventListener('click', function(){
      if (bgAudio.paused) tryPlay(); else bgAudio.pause();
    });
    bgAudio.addEventListener('pause', function(){ setAudioState(false); });
    bgAudio.addEventListener('play', function(){ setAudioState(true); });
  }
  // browsers block autoplay until the first interaction
  function unlock(){
    tryPlay();
    document.removeEventListener('pointerdown', unlock);
    document.removeEventListener('touchstart', unlock);
  }
  document.addEventListener('pointerdown', unlock);
  document.addEventListener('touchstart', unlock);

  document.addEventListener('keydown', function(e){
    if (mode === 'welcome') {
      if (e.key === 'Enter' || e.key === ' ') { e.preventDefault(); showGallery(); }
      return;
    }
    if (e.key === 'ArrowLeft') { manual(-1); }
    else if (e.key === 'ArrowRight' || e.key === ' ') { e.preventDefault(); manual(1); }
    else if (e.key === 'Escape') { showWelcome(); }
  });

  (function spawnHearts(){
    var layer = document.querySelector('.hearts-layer');
    for (var i = 0; i < 22; i++) {
      var h = document.createElement('span');
      h.className = 'heart';
      h.style.left = (Math.random() * 100) + '%';
      h.style.bottom = (-10 - Math.random() * 80) + 'px';
      h.style.opacity = String(0.3 + Math.random() * 0.5);
      h.style.transform = 'scale(' + (0.45 + Math.random() * 0.8) + ') rotate(45deg)';
      h.style.animationDuration = (7 + Math.random() * 9) + 's';
      h.style.animationDelay = (Math.random() * 5) + 's';
      layer.appendChild(h);
    }
  })();

  updateControls();
})();
</script>
`
